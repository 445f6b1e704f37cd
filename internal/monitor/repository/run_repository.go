package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"uptime-monitor/internal/monitor/model"
)

// EngineRun records one completed scheduler pass. The latest row serves as
// the liveness stamp for external monitoring of the engine itself.
type EngineRun struct {
	ID         int64 `gorm:"primaryKey"`
	FinishedAt time.Time
	Checked    int
	Succeeded  int
	Failed     int
}

type RunRepository interface {
	RecordRun(ctx context.Context, finishedAt time.Time, summary model.BatchSummary) error
	LastRun(ctx context.Context) (time.Time, error)
}

type runRepository struct {
	db *gorm.DB
}

func (r *runRepository) RecordRun(ctx context.Context, finishedAt time.Time, summary model.BatchSummary) error {
	run := EngineRun{
		FinishedAt: finishedAt,
		Checked:    summary.Checked,
		Succeeded:  summary.Succeeded,
		Failed:     summary.Failed,
	}
	result := r.db.WithContext(ctx).Create(&run)
	if result.Error != nil {
		return fmt.Errorf("RunRepository.RecordRun: %w", result.Error)
	}
	return nil
}

func (r *runRepository) LastRun(ctx context.Context) (time.Time, error) {
	var run EngineRun
	result := r.db.WithContext(ctx).Order("finished_at DESC").First(&run)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("RunRepository.LastRun: %w", result.Error)
	}
	return run.FinishedAt, nil
}

func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{
		db: db,
	}
}
