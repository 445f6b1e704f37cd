package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"uptime-monitor/internal/monitor/model"
)

type NotificationRepository interface {
	// HasRecent reports whether a notification of the given kind was sent for
	// the target within the window. Used to enforce throttle windows.
	HasRecent(ctx context.Context, targetID string, kind string, within time.Duration) (bool, error)
	Append(ctx context.Context, record model.NotificationRecord) error
}

type notificationRepository struct {
	db *gorm.DB
}

func (n *notificationRepository) HasRecent(ctx context.Context, targetID string, kind string, within time.Duration) (bool, error) {
	var count int64
	cutoff := time.Now().Add(-within)
	result := n.db.WithContext(ctx).Model(&model.NotificationRecord{}).
		Where("target_id = ? AND kind = ? AND sent_at >= ?", targetID, kind, cutoff).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("NotificationRepository.HasRecent: %w", result.Error)
	}
	return count > 0, nil
}

func (n *notificationRepository) Append(ctx context.Context, record model.NotificationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	result := n.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return fmt.Errorf("NotificationRepository.Append: %w", result.Error)
	}
	return nil
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}
