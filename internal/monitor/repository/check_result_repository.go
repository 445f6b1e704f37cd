package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"uptime-monitor/internal/monitor/model"
)

type CheckResultRepository interface {
	Append(ctx context.Context, result model.CheckResult) (model.CheckResult, error)
	QueryChecks(ctx context.Context, targetID string, since time.Time) ([]model.CheckResult, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type checkResultRepository struct {
	db *gorm.DB
}

func (c *checkResultRepository) Append(ctx context.Context, result model.CheckResult) (model.CheckResult, error) {
	res := c.db.WithContext(ctx).Create(&result)
	if res.Error != nil {
		return result, fmt.Errorf("CheckResultRepository.Append: %w", res.Error)
	}
	return result, nil
}

func (c *checkResultRepository) QueryChecks(ctx context.Context, targetID string, since time.Time) ([]model.CheckResult, error) {
	var results []model.CheckResult
	res := c.db.WithContext(ctx).
		Where("target_id = ? AND timestamp >= ?", targetID, since).
		Order("timestamp ASC").
		Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.QueryChecks: %w", res.Error)
	}
	return results, nil
}

func (c *checkResultRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := c.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&model.CheckResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.PurgeOlderThan: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func NewCheckResultRepository(db *gorm.DB) CheckResultRepository {
	return &checkResultRepository{
		db: db,
	}
}
