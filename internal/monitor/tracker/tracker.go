package tracker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/repository"
)

// Tracker applies classified check results to the per-target status ledger
// and maintains incident records. All writes to a target's ledger fields are
// serialized through here; the scheduler guarantees at most one in-flight
// check per target.
type Tracker interface {
	Apply(ctx context.Context, target model.Target, result model.CheckResult) (model.Transition, error)
}

type tracker struct {
	targetRepo   repository.TargetRepository
	incidentRepo repository.IncidentRepository
	logger       *zap.Logger
}

func NewTracker(targetRepo repository.TargetRepository, incidentRepo repository.IncidentRepository, logger *zap.Logger) Tracker {
	return &tracker{
		targetRepo:   targetRepo,
		incidentRepo: incidentRepo,
		logger:       logger,
	}
}

// rootCause is the error description of the triggering check, falling back to
// the HTTP status code.
func rootCause(result model.CheckResult) string {
	if result.ErrorMessage != "" {
		return result.ErrorMessage
	}
	if result.HTTPStatus != nil {
		return fmt.Sprintf("HTTP %d", *result.HTTPStatus)
	}
	return "unknown cause"
}

func (t *tracker) Apply(ctx context.Context, target model.Target, result model.CheckResult) (model.Transition, error) {
	previous := target.CurrentStatus
	if previous == "" {
		previous = model.StatusUnknown
	}

	// A single failing sample flips state immediately. There is no
	// confirmation window before an incident opens.
	if previous == result.Status {
		if err := t.targetRepo.TouchLastChecked(ctx, target.ID, result.Timestamp); err != nil {
			return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", err)
		}
		return model.Transition{From: previous, To: result.Status}, nil
	}

	transition := model.Transition{
		Changed: true,
		From:    previous,
		To:      result.Status,
	}

	if result.Status != model.StatusUp {
		incident, err := t.incidentRepo.GetOpen(ctx, target.ID)
		switch {
		case err == nil:
			// Transition between non-up substates: the open incident absorbs
			// the new root cause, a second one is never opened.
			if updateErr := t.incidentRepo.UpdateRootCause(ctx, incident.ID, rootCause(result)); updateErr != nil {
				return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", updateErr)
			}
		case errors.Is(err, apperrors.ErrNoOpenIncident):
			opened, openErr := t.incidentRepo.Open(ctx, target.ID, rootCause(result), result.Timestamp)
			if openErr != nil {
				return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", openErr)
			}
			transition.OpenedIncident = &opened
			t.logger.Info("incident opened",
				zap.String("target_id", target.ID),
				zap.String("status", result.Status),
				zap.String("root_cause", opened.RootCause))
		default:
			return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", err)
		}
	} else {
		incident, err := t.incidentRepo.GetOpen(ctx, target.ID)
		switch {
		case err == nil:
			closed, closeErr := t.incidentRepo.Close(ctx, incident.ID, result.Timestamp)
			if closeErr != nil {
				return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", closeErr)
			}
			transition.ClosedIncident = &closed
			t.logger.Info("incident closed",
				zap.String("target_id", target.ID),
				zap.Int64p("duration_seconds", closed.DurationSeconds))
		case errors.Is(err, apperrors.ErrNoOpenIncident):
			// unknown -> up, or recovery observed with no ledger entry.
		default:
			return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", err)
		}
	}

	if err := t.targetRepo.UpdateStatus(ctx, target.ID, result.Status, result.Timestamp, result.Timestamp); err != nil {
		return model.Transition{}, fmt.Errorf("Tracker.Apply: %w", err)
	}
	return transition, nil
}
