package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"go.uber.org/zap"

	"uptime-monitor/internal/monitor/model"
)

const esCheckResultIndexName = "check_results"

type esCheckResultDoc struct {
	TargetID      string    `json:"target_id"`
	Status        string    `json:"status"`
	StatusNumeric int       `json:"status_numeric"`
	Timestamp     time.Time `json:"timestamp"`
	LatencyMs     float64   `json:"latency_ms"`
	HTTPStatus    *int      `json:"http_status,omitempty"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// indexedCheckResultRepository mirrors every appended check result into an
// elasticsearch index used by fleet-wide report aggregations. Indexing is
// best effort: the relational append is authoritative.
type indexedCheckResultRepository struct {
	repo   CheckResultRepository
	es     *elasticsearch.Client
	logger *zap.Logger
}

func (i *indexedCheckResultRepository) Append(ctx context.Context, result model.CheckResult) (model.CheckResult, error) {
	appended, err := i.repo.Append(ctx, result)
	if err != nil {
		return appended, err
	}

	doc := esCheckResultDoc{
		TargetID:      appended.TargetID,
		Status:        appended.Status,
		StatusNumeric: appended.StatusNumeric,
		Timestamp:     appended.Timestamp,
		LatencyMs:     appended.LatencyMs,
		HTTPStatus:    appended.HTTPStatus,
		ErrorKind:     appended.ErrorKind,
		ErrorMessage:  appended.ErrorMessage,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		i.logger.Error("failed to marshal check result for indexing", zap.Error(err), zap.String("target_id", appended.TargetID))
		return appended, nil
	}
	res, err := i.es.Index(esCheckResultIndexName, bytes.NewReader(b), i.es.Index.WithContext(ctx))
	if err != nil {
		i.logger.Error("failed to index check result", zap.Error(err), zap.String("target_id", appended.TargetID))
		return appended, nil
	}
	defer res.Body.Close()
	if res.IsError() {
		i.logger.Error("failed to index check result", zap.String("target_id", appended.TargetID),
			zap.String("response", fmt.Sprintf("[%d]", res.StatusCode)))
	}
	return appended, nil
}

func (i *indexedCheckResultRepository) QueryChecks(ctx context.Context, targetID string, since time.Time) ([]model.CheckResult, error) {
	return i.repo.QueryChecks(ctx, targetID, since)
}

func (i *indexedCheckResultRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return i.repo.PurgeOlderThan(ctx, cutoff)
}

func NewIndexedCheckResultRepository(repo CheckResultRepository, esClient *elasticsearch.Client, logger *zap.Logger) CheckResultRepository {
	return &indexedCheckResultRepository{
		repo:   repo,
		es:     esClient,
		logger: logger,
	}
}
