package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
)

type IncidentRepository interface {
	Open(ctx context.Context, targetID string, rootCause string, startedAt time.Time) (model.Incident, error)
	Close(ctx context.Context, incidentID string, endedAt time.Time) (model.Incident, error)
	UpdateRootCause(ctx context.Context, incidentID string, rootCause string) error
	GetOpen(ctx context.Context, targetID string) (model.Incident, error)
	ListByTarget(ctx context.Context, targetID string, limit int) ([]model.Incident, error)
}

type incidentRepository struct {
	db *gorm.DB
}

func (i *incidentRepository) Open(ctx context.Context, targetID string, rootCause string, startedAt time.Time) (model.Incident, error) {
	incident := model.Incident{
		ID:        uuid.NewString(),
		TargetID:  targetID,
		RootCause: rootCause,
		StartedAt: startedAt,
	}
	result := i.db.WithContext(ctx).Create(&incident)
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.Open: %w", result.Error)
	}
	return incident, nil
}

func (i *incidentRepository) Close(ctx context.Context, incidentID string, endedAt time.Time) (model.Incident, error) {
	var incident model.Incident
	result := i.db.WithContext(ctx).First(&incident, "id = ?", incidentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return incident, fmt.Errorf("IncidentRepository.Close: %w", apperrors.ErrIncidentNotFound)
		}
		return incident, fmt.Errorf("IncidentRepository.Close: %w", result.Error)
	}

	duration := int64(endedAt.Sub(incident.StartedAt).Seconds())
	incident.EndedAt = &endedAt
	incident.DurationSeconds = &duration
	result = i.db.WithContext(ctx).Model(&model.Incident{}).Where("id = ?", incidentID).Updates(map[string]interface{}{
		"ended_at":         endedAt,
		"duration_seconds": duration,
	})
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.Close: %w", result.Error)
	}
	return incident, nil
}

func (i *incidentRepository) UpdateRootCause(ctx context.Context, incidentID string, rootCause string) error {
	result := i.db.WithContext(ctx).Model(&model.Incident{}).Where("id = ?", incidentID).Update("root_cause", rootCause)
	if result.Error != nil {
		return fmt.Errorf("IncidentRepository.UpdateRootCause: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("IncidentRepository.UpdateRootCause: %w", apperrors.ErrIncidentNotFound)
	}
	return nil
}

func (i *incidentRepository) GetOpen(ctx context.Context, targetID string) (model.Incident, error) {
	var incident model.Incident
	result := i.db.WithContext(ctx).First(&incident, "target_id = ? AND ended_at IS NULL", targetID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return incident, fmt.Errorf("IncidentRepository.GetOpen: %w", apperrors.ErrNoOpenIncident)
		}
		return incident, fmt.Errorf("IncidentRepository.GetOpen: %w", result.Error)
	}
	return incident, nil
}

func (i *incidentRepository) ListByTarget(ctx context.Context, targetID string, limit int) ([]model.Incident, error) {
	var incidents []model.Incident
	result := i.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("started_at DESC").
		Limit(limit).
		Find(&incidents)
	if result.Error != nil {
		return nil, fmt.Errorf("IncidentRepository.ListByTarget: %w", result.Error)
	}
	return incidents, nil
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}
