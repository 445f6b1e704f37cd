package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/repository"
	"uptime-monitor/internal/monitor/service"
)

// Scheduler drives the engine on a fixed tick: run all due checks, purge
// history past retention, record the liveness stamp.
type Scheduler interface {
	Start()
	Stop()
	RunBatch(ctx context.Context, targetIDFilter string) (model.BatchSummary, error)
}

type monitorScheduler struct {
	ticker       *time.Ticker
	tickInterval time.Duration
	batchTimeout time.Duration
	retention    time.Duration
	stopChan     chan struct{}
	service      service.MonitorService
	historyRepo  repository.CheckResultRepository
	runRepo      repository.RunRepository
	logger       *zap.Logger
}

func NewScheduler(
	monitorService service.MonitorService,
	historyRepo repository.CheckResultRepository,
	runRepo repository.RunRepository,
	tickInterval time.Duration,
	retention time.Duration,
	logger *zap.Logger,
) Scheduler {
	if tickInterval <= 0 {
		tickInterval = time.Minute
	}
	return &monitorScheduler{
		tickInterval: tickInterval,
		// A hung probe is bounded by its own timeout; the batch deadline only
		// caps the tail of store writes behind slow targets.
		batchTimeout: 5 * time.Minute,
		retention:    retention,
		stopChan:     make(chan struct{}),
		service:      monitorService,
		historyRepo:  historyRepo,
		runRepo:      runRepo,
		logger:       logger,
	}
}

func (s *monitorScheduler) Start() {
	go func() {
		s.ticker = time.NewTicker(s.tickInterval)
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				s.onTick()
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *monitorScheduler) Stop() {
	s.stopChan <- struct{}{}
}

func (s *monitorScheduler) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
	defer cancel()
	summary, err := s.RunBatch(ctx, "")
	if err != nil {
		s.logger.Error("scheduler batch failed", zap.Error(fmt.Errorf("monitorScheduler.onTick: %w", err)))
		return
	}
	if summary.Checked > 0 {
		s.logger.Info("scheduler batch finished",
			zap.Int("checked", summary.Checked),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed))
	}
}

// RunBatch performs one full scheduler pass. Retention cleanup and the run
// stamp follow the checks; their failures are logged but do not fail a batch
// whose checks completed.
func (s *monitorScheduler) RunBatch(ctx context.Context, targetIDFilter string) (model.BatchSummary, error) {
	summary, err := s.service.RunOnce(ctx, targetIDFilter)
	if err != nil {
		return summary, fmt.Errorf("monitorScheduler.RunBatch: %w", err)
	}

	cutoff := time.Now().UTC().Add(-s.retention)
	if purged, purgeErr := s.historyRepo.PurgeOlderThan(ctx, cutoff); purgeErr != nil {
		s.logger.Error("failed to purge check history", zap.Error(fmt.Errorf("monitorScheduler.RunBatch: %w", purgeErr)))
	} else if purged > 0 {
		s.logger.Info("purged check history", zap.Int64("rows", purged))
	}

	if recordErr := s.runRepo.RecordRun(ctx, time.Now().UTC(), summary); recordErr != nil {
		s.logger.Error("failed to record run", zap.Error(fmt.Errorf("monitorScheduler.RunBatch: %w", recordErr)))
	}
	return summary, nil
}
