package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
)

type ExpiryWatchRepository interface {
	// Upsert overwrites the single current row for (target, kind).
	Upsert(ctx context.Context, watch model.ExpiryWatch) error
	Get(ctx context.Context, targetID string, kind string) (model.ExpiryWatch, error)
}

type expiryWatchRepository struct {
	db *gorm.DB
}

func (e *expiryWatchRepository) Upsert(ctx context.Context, watch model.ExpiryWatch) error {
	result := e.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "target_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at", "days_remaining", "last_checked_at", "last_error"}),
	}).Create(&watch)
	if result.Error != nil {
		return fmt.Errorf("ExpiryWatchRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (e *expiryWatchRepository) Get(ctx context.Context, targetID string, kind string) (model.ExpiryWatch, error) {
	var watch model.ExpiryWatch
	result := e.db.WithContext(ctx).First(&watch, "target_id = ? AND kind = ?", targetID, kind)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return watch, fmt.Errorf("ExpiryWatchRepository.Get: %w", apperrors.ErrTargetNotFound)
		}
		return watch, fmt.Errorf("ExpiryWatchRepository.Get: %w", result.Error)
	}
	return watch, nil
}

func NewExpiryWatchRepository(db *gorm.DB) ExpiryWatchRepository {
	return &expiryWatchRepository{
		db: db,
	}
}
