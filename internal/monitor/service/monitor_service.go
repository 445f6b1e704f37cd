package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uptime-monitor/internal/monitor/events"
	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/prober"
	"uptime-monitor/internal/monitor/repository"
	"uptime-monitor/internal/monitor/stats"
	"uptime-monitor/internal/monitor/tracker"
	"uptime-monitor/pkg/mail"
)

// MonitorService is the engine facade exposed to the scheduler, the HTTP API
// and the batch CLI.
type MonitorService interface {
	// RunOnce probes every due target (or the single filtered target) with
	// bounded parallelism. Per-target failures land in the summary; only a
	// failure to enumerate targets is returned as an error.
	RunOnce(ctx context.Context, targetIDFilter string) (model.BatchSummary, error)
	GetTargets(ctx context.Context) ([]model.Target, error)
	GetUptime(ctx context.Context, targetID string, windowHours int) (float64, error)
	GetResponseTimeStats(ctx context.Context, targetID string, since time.Time) (stats.ResponseTimeStats, error)
	GetChartRollup(ctx context.Context, targetID string, since time.Time, granularity stats.Granularity) ([]stats.RollupBucket, error)
	GetIncidents(ctx context.Context, targetID string, limit int) ([]model.Incident, error)
	QueryChecks(ctx context.Context, targetID string, since time.Time) ([]model.CheckResult, error)
	LastRun(ctx context.Context) (time.Time, error)
	ReportFleetStatus(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error
}

type monitorService struct {
	targetRepo   repository.TargetRepository
	historyRepo  repository.CheckResultRepository
	incidentRepo repository.IncidentRepository
	expiryRepo   repository.ExpiryWatchRepository
	runRepo      repository.RunRepository
	reportRepo   repository.ReportRepository
	prober       prober.Prober
	tracker      tracker.Tracker
	notifier     Notifier
	publisher    events.Publisher
	mailSender   mail.Sender
	logger       *zap.Logger
	workerCount  int

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

// Notifier is the slice of the notifier the service drives per check.
type Notifier interface {
	NotifyTransition(ctx context.Context, target model.Target, result model.CheckResult, transition model.Transition) error
	NotifyExpiries(ctx context.Context, target model.Target, result model.CheckResult) error
}

func NewMonitorService(
	targetRepo repository.TargetRepository,
	historyRepo repository.CheckResultRepository,
	incidentRepo repository.IncidentRepository,
	expiryRepo repository.ExpiryWatchRepository,
	runRepo repository.RunRepository,
	reportRepo repository.ReportRepository,
	probe prober.Prober,
	track tracker.Tracker,
	notify Notifier,
	publisher events.Publisher,
	mailSender mail.Sender,
	logger *zap.Logger,
	workerCount int,
) MonitorService {
	if workerCount < 1 {
		workerCount = 1
	}
	return &monitorService{
		targetRepo:   targetRepo,
		historyRepo:  historyRepo,
		incidentRepo: incidentRepo,
		expiryRepo:   expiryRepo,
		runRepo:      runRepo,
		reportRepo:   reportRepo,
		prober:       probe,
		tracker:      track,
		notifier:     notify,
		publisher:    publisher,
		mailSender:   mailSender,
		logger:       logger,
		workerCount:  workerCount,
		inflight:     make(map[string]struct{}),
	}
}

// tryAcquire marks the target as in flight. A target already being probed is
// skipped on an overlapping tick rather than queued twice.
func (s *monitorService) tryAcquire(targetID string) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if _, busy := s.inflight[targetID]; busy {
		return false
	}
	s.inflight[targetID] = struct{}{}
	return true
}

func (s *monitorService) release(targetID string) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	delete(s.inflight, targetID)
}

func (s *monitorService) RunOnce(ctx context.Context, targetIDFilter string) (model.BatchSummary, error) {
	now := time.Now().UTC()
	summary := model.BatchSummary{StartedAt: now}

	var targets []model.Target
	if targetIDFilter != "" {
		target, err := s.targetRepo.GetByID(ctx, targetIDFilter)
		if err != nil {
			return summary, fmt.Errorf("MonitorService.RunOnce: %w", err)
		}
		targets = []model.Target{target}
	} else {
		var err error
		targets, err = s.targetRepo.ListDue(ctx, now)
		if err != nil {
			return summary, fmt.Errorf("MonitorService.RunOnce: %w", err)
		}
	}

	sem := make(chan struct{}, s.workerCount)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, target := range targets {
		if !s.tryAcquire(target.ID) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(target model.Target) {
			defer wg.Done()
			defer func() { <-sem }()
			defer s.release(target.ID)

			err := s.processTarget(ctx, target)
			mu.Lock()
			defer mu.Unlock()
			summary.Checked++
			if err != nil {
				summary.Failed++
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", target.ID, err))
			} else {
				summary.Succeeded++
			}
		}(target)
	}
	wg.Wait()
	return summary, nil
}

// processTarget runs one full check pipeline for one target. Store errors are
// per-target failures; dispatch and publish errors are logged and never fail
// the check.
func (s *monitorService) processTarget(ctx context.Context, target model.Target) error {
	result := s.prober.Probe(ctx, target)

	if _, err := s.historyRepo.Append(ctx, result); err != nil {
		return fmt.Errorf("MonitorService.processTarget: %w", err)
	}

	transition, err := s.tracker.Apply(ctx, target, result)
	if err != nil {
		return fmt.Errorf("MonitorService.processTarget: %w", err)
	}

	s.upsertExpiryWatches(ctx, target, result)

	if err = s.notifier.NotifyTransition(ctx, target, result, transition); err != nil {
		s.logger.Error("failed to dispatch transition notification", zap.Error(err), zap.String("target_id", target.ID))
	}
	if err = s.notifier.NotifyExpiries(ctx, target, result); err != nil {
		s.logger.Error("failed to dispatch expiry notification", zap.Error(err), zap.String("target_id", target.ID))
	}

	if transition.Changed {
		event := events.StatusChangeEvent{
			TargetID: target.ID,
			URL:      target.URL,
			From:     transition.From,
			To:       transition.To,
			At:       result.Timestamp,
		}
		if transition.OpenedIncident != nil {
			event.RootCause = transition.OpenedIncident.RootCause
		}
		if err = s.publisher.PublishStatusChange(ctx, event); err != nil {
			s.logger.Error("failed to publish status change", zap.Error(err), zap.String("target_id", target.ID))
		}
	}
	return nil
}

func (s *monitorService) upsertExpiryWatches(ctx context.Context, target model.Target, result model.CheckResult) {
	if target.CheckCertificate && (result.Certificate != nil || result.ErrorKind == model.ErrorKindCertificate) {
		watch := model.ExpiryWatch{
			TargetID:      target.ID,
			Kind:          model.ExpiryKindCertificate,
			LastCheckedAt: result.Timestamp,
		}
		if result.Certificate != nil {
			validTo := result.Certificate.ValidTo
			watch.ExpiresAt = &validTo
			watch.DaysRemaining = result.Certificate.DaysRemaining
		}
		if result.ErrorKind == model.ErrorKindCertificate {
			watch.LastError = result.ErrorMessage
		}
		if err := s.expiryRepo.Upsert(ctx, watch); err != nil {
			s.logger.Error("failed to upsert certificate watch", zap.Error(err), zap.String("target_id", target.ID))
		}
	}

	if target.CheckRegistration && result.Registration != nil {
		expiresAt := result.Registration.ExpiresAt
		watch := model.ExpiryWatch{
			TargetID:      target.ID,
			Kind:          model.ExpiryKindRegistration,
			ExpiresAt:     &expiresAt,
			DaysRemaining: result.Registration.DaysRemaining,
			LastCheckedAt: result.Timestamp,
		}
		if err := s.expiryRepo.Upsert(ctx, watch); err != nil {
			s.logger.Error("failed to upsert registration watch", zap.Error(err), zap.String("target_id", target.ID))
		}
	}
}

func (s *monitorService) GetTargets(ctx context.Context) ([]model.Target, error) {
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetTargets: %w", err)
	}
	return targets, nil
}

func (s *monitorService) GetUptime(ctx context.Context, targetID string, windowHours int) (float64, error) {
	since := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour)
	results, err := s.historyRepo.QueryChecks(ctx, targetID, since)
	if err != nil {
		return 0, fmt.Errorf("MonitorService.GetUptime: %w", err)
	}
	return stats.UptimePercentage(results), nil
}

func (s *monitorService) GetResponseTimeStats(ctx context.Context, targetID string, since time.Time) (stats.ResponseTimeStats, error) {
	results, err := s.historyRepo.QueryChecks(ctx, targetID, since)
	if err != nil {
		return stats.ResponseTimeStats{}, fmt.Errorf("MonitorService.GetResponseTimeStats: %w", err)
	}
	return stats.ResponseTimes(results), nil
}

func (s *monitorService) GetChartRollup(ctx context.Context, targetID string, since time.Time, granularity stats.Granularity) ([]stats.RollupBucket, error) {
	if granularity == "" {
		granularity = stats.GranularityForWindow(time.Since(since))
	}
	results, err := s.historyRepo.QueryChecks(ctx, targetID, since)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetChartRollup: %w", err)
	}
	return stats.Rollup(results, granularity), nil
}

func (s *monitorService) GetIncidents(ctx context.Context, targetID string, limit int) ([]model.Incident, error) {
	incidents, err := s.incidentRepo.ListByTarget(ctx, targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetIncidents: %w", err)
	}
	return incidents, nil
}

func (s *monitorService) QueryChecks(ctx context.Context, targetID string, since time.Time) ([]model.CheckResult, error) {
	results, err := s.historyRepo.QueryChecks(ctx, targetID, since)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.QueryChecks: %w", err)
	}
	return results, nil
}

func (s *monitorService) LastRun(ctx context.Context) (time.Time, error) {
	lastRun, err := s.runRepo.LastRun(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("MonitorService.LastRun: %w", err)
	}
	return lastRun, nil
}

// ReportFleetStatus mails the fleet summary for a window, with the current
// target list attached as a spreadsheet.
func (s *monitorService) ReportFleetStatus(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error {
	fleet, err := s.reportRepo.GetFleetHealthInformation(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("MonitorService.ReportFleetStatus: %w", err)
	}
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("MonitorService.ReportFleetStatus: %w", err)
	}

	var attachments []mail.Attachment
	if sheet, sheetErr := buildTargetSheet(targets); sheetErr != nil {
		s.logger.Error("failed to build target sheet", zap.Error(sheetErr))
	} else {
		attachments = append(attachments, mail.Attachment{
			Name:    "targets.xlsx",
			Content: sheet,
		})
	}

	subject := fmt.Sprintf("Uptime Status Report From %s To %s",
		startDate.Format("2006-01-02"), endDate.Add(-1*time.Second).Format("2006-01-02"))
	if err = s.mailSender.SendMail([]string{recipient}, subject, generateHTMLReportBody(fleet), generateTextReportBody(fleet), attachments); err != nil {
		return fmt.Errorf("MonitorService.ReportFleetStatus: %w", err)
	}
	return nil
}

func buildTargetSheet(targets []model.Target) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"Name", "URL", "Status", "Status Since", "Last Checked"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, target := range targets {
		values := []interface{}{target.Name, target.URL, target.CurrentStatus, formatTimePtr(target.StatusSince), formatTimePtr(target.LastCheckedAt)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f.WriteToBuffer()
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func generateTextReportBody(fleet repository.FleetHealthInformation) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Targets: %d\n"+
			"Up: %d\n"+
			"Down: %d\n"+
			"Degraded: %d\n"+
			"Certificate Invalid: %d\n\n"+
			"Average Uptime Across All Targets: %.2f%%",
		fleet.TotalTargetsCnt,
		fleet.UpTargetsCnt,
		fleet.DownTargetsCnt,
		fleet.DegradedTargetsCnt,
		fleet.CertificateInvalidCnt,
		fleet.AverageUptimePercentage,
	)
}

func generateHTMLReportBody(fleet repository.FleetHealthInformation) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Targets:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Degraded:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Certificate Invalid:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		fleet.TotalTargetsCnt,
		fleet.UpTargetsCnt,
		fleet.DownTargetsCnt,
		fleet.DegradedTargetsCnt,
		fleet.CertificateInvalidCnt,
		fleet.AverageUptimePercentage,
	)
}
