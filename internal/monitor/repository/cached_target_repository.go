package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"uptime-monitor/internal/monitor/model"
)

// cachedTargetRepository caches single-target lookups in redis. Engine-owned
// status writes invalidate the cached entry so API reads never see a stale
// current_status.
type cachedTargetRepository struct {
	redis    *redis.Client
	repo     TargetRepository
	cacheTTL time.Duration
}

func (*cachedTargetRepository) targetCacheKey(id string) string {
	return fmt.Sprintf("target:%s", id)
}

func (c *cachedTargetRepository) ListDue(ctx context.Context, now time.Time) ([]model.Target, error) {
	// Due selection must always see fresh last_checked_at values.
	return c.repo.ListDue(ctx, now)
}

func (c *cachedTargetRepository) List(ctx context.Context) ([]model.Target, error) {
	return c.repo.List(ctx)
}

func (c *cachedTargetRepository) GetByID(ctx context.Context, targetID string) (model.Target, error) {
	key := c.targetCacheKey(targetID)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var target model.Target
		if decodeErr := gob.NewDecoder(bytes.NewReader(data)).Decode(&target); decodeErr == nil {
			return target, nil
		}
	} else if err != redis.Nil {
		return model.Target{}, fmt.Errorf("cachedTargetRepository.GetByID: %w", err)
	}

	target, err := c.repo.GetByID(ctx, targetID)
	if err != nil {
		return model.Target{}, err
	}
	var buf bytes.Buffer
	if encodeErr := gob.NewEncoder(&buf).Encode(target); encodeErr == nil {
		c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL)
	}
	return target, nil
}

func (c *cachedTargetRepository) UpdateStatus(ctx context.Context, targetID string, status string, statusSince time.Time, checkedAt time.Time) error {
	if err := c.redis.Del(ctx, c.targetCacheKey(targetID)).Err(); err != nil {
		return fmt.Errorf("cachedTargetRepository.UpdateStatus: %w", err)
	}
	return c.repo.UpdateStatus(ctx, targetID, status, statusSince, checkedAt)
}

func (c *cachedTargetRepository) TouchLastChecked(ctx context.Context, targetID string, checkedAt time.Time) error {
	if err := c.redis.Del(ctx, c.targetCacheKey(targetID)).Err(); err != nil {
		return fmt.Errorf("cachedTargetRepository.TouchLastChecked: %w", err)
	}
	return c.repo.TouchLastChecked(ctx, targetID, checkedAt)
}

func NewCachedTargetRepository(redisClient *redis.Client, repo TargetRepository, cacheTTL time.Duration) TargetRepository {
	return &cachedTargetRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
