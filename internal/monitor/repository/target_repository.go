package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
)

type TargetRepository interface {
	// ListDue returns enabled targets whose next check is due, longest-stale
	// first with never-checked targets ahead of everything.
	ListDue(ctx context.Context, now time.Time) ([]model.Target, error)
	GetByID(ctx context.Context, targetID string) (model.Target, error)
	List(ctx context.Context) ([]model.Target, error)
	// UpdateStatus writes the engine-owned ledger fields on a transition.
	UpdateStatus(ctx context.Context, targetID string, status string, statusSince time.Time, checkedAt time.Time) error
	// TouchLastChecked updates last_checked_at only, for checks without a
	// status change.
	TouchLastChecked(ctx context.Context, targetID string, checkedAt time.Time) error
}

type targetRepository struct {
	db *gorm.DB
}

func (t *targetRepository) ListDue(ctx context.Context, now time.Time) ([]model.Target, error) {
	var targets []model.Target
	result := t.db.WithContext(ctx).
		Where("paused = ?", false).
		Where("last_checked_at IS NULL OR last_checked_at < ? - (interval_seconds * INTERVAL '1 second')", now).
		Order("last_checked_at ASC NULLS FIRST").
		Find(&targets)
	if result.Error != nil {
		return nil, fmt.Errorf("TargetRepository.ListDue: %w", result.Error)
	}
	return targets, nil
}

func (t *targetRepository) GetByID(ctx context.Context, targetID string) (model.Target, error) {
	var target model.Target
	result := t.db.WithContext(ctx).First(&target, "id = ?", targetID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return target, fmt.Errorf("TargetRepository.GetByID: %w", apperrors.ErrTargetNotFound)
		}
		return target, fmt.Errorf("TargetRepository.GetByID: %w", result.Error)
	}
	return target, nil
}

func (t *targetRepository) List(ctx context.Context) ([]model.Target, error) {
	var targets []model.Target
	result := t.db.WithContext(ctx).Order("name ASC").Find(&targets)
	if result.Error != nil {
		return nil, fmt.Errorf("TargetRepository.List: %w", result.Error)
	}
	return targets, nil
}

func (t *targetRepository) UpdateStatus(ctx context.Context, targetID string, status string, statusSince time.Time, checkedAt time.Time) error {
	result := t.db.WithContext(ctx).Model(&model.Target{}).Where("id = ?", targetID).Updates(map[string]interface{}{
		"current_status":  status,
		"status_since":    statusSince,
		"last_checked_at": checkedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("TargetRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("TargetRepository.UpdateStatus: %w", apperrors.ErrTargetNotFound)
	}
	return nil
}

func (t *targetRepository) TouchLastChecked(ctx context.Context, targetID string, checkedAt time.Time) error {
	result := t.db.WithContext(ctx).Model(&model.Target{}).Where("id = ?", targetID).Update("last_checked_at", checkedAt)
	if result.Error != nil {
		return fmt.Errorf("TargetRepository.TouchLastChecked: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("TargetRepository.TouchLastChecked: %w", apperrors.ErrTargetNotFound)
	}
	return nil
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{
		db: db,
	}
}
