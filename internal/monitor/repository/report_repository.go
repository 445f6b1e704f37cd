package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
)

// FleetHealthInformation summarizes all monitored targets over a window, used
// by the daily status report mail.
type FleetHealthInformation struct {
	TotalTargetsCnt         int
	UpTargetsCnt            int
	DownTargetsCnt          int
	DegradedTargetsCnt      int
	CertificateInvalidCnt   int
	AverageUptimePercentage float64
}

type ReportRepository interface {
	GetFleetHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthInformation, error)
}

type reportRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esFleetHealthResponse struct {
	Aggregations struct {
		AvgUptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime_percentage"`
		Targets struct {
			Buckets []struct {
				Key         string `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"targets"`
	} `json:"aggregations"`
}

func (r *reportRepository) GetFleetHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthInformation, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"avg_uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
			"targets": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "target_id",
					"size":  20000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return FleetHealthInformation{}, fmt.Errorf("ReportRepository.GetFleetHealthInformation encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esCheckResultIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return FleetHealthInformation{}, fmt.Errorf("ReportRepository.GetFleetHealthInformation: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return FleetHealthInformation{}, fmt.Errorf("ReportRepository.GetFleetHealthInformation decode err response: %w", err)
		}
		return FleetHealthInformation{}, fmt.Errorf("ReportRepository.GetFleetHealthInformation: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var fleetRes esFleetHealthResponse
	if err = json.NewDecoder(res.Body).Decode(&fleetRes); err != nil {
		return FleetHealthInformation{}, fmt.Errorf("ReportRepository.GetFleetHealthInformation decode response body: %w", err)
	}

	fleet := FleetHealthInformation{
		TotalTargetsCnt:         len(fleetRes.Aggregations.Targets.Buckets),
		AverageUptimePercentage: fleetRes.Aggregations.AvgUptimePercentage.Value * 100,
	}
	for _, bucket := range fleetRes.Aggregations.Targets.Buckets {
		if len(bucket.LatestCheck.Hits.Hits) == 0 {
			continue
		}
		switch bucket.LatestCheck.Hits.Hits[0].Source.Status {
		case model.StatusUp:
			fleet.UpTargetsCnt++
		case model.StatusDegraded:
			fleet.DegradedTargetsCnt++
		case model.StatusCertificateInvalid:
			fleet.CertificateInvalidCnt++
		default:
			fleet.DownTargetsCnt++
		}
	}
	return fleet, nil
}

func NewReportRepository(esClient *elasticsearch.Client) ReportRepository {
	return &reportRepository{
		es: esClient,
	}
}
