package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	apperrors "uptime-monitor/internal/monitor/errors"
	mockrepository "uptime-monitor/internal/monitor/mocks/repository"
	"uptime-monitor/internal/monitor/model"
)

func TestTracker_Apply(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	openIncident := model.Incident{ID: "inc-1", TargetID: "t1", RootCause: "HTTP 503", StartedAt: now.Add(-time.Hour)}
	duration := int64(3600)
	closedIncident := model.Incident{ID: "inc-1", TargetID: "t1", EndedAt: &now, DurationSeconds: &duration}

	testCases := []struct {
		name            string
		target          model.Target
		result          model.CheckResult
		setupMocks      func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository)
		expectedChanged bool
		expectedFrom    string
		expectedTo      string
		expectOpened    bool
		expectClosed    bool
		expectErr       bool
	}{
		{
			name:   "Same status only touches last checked",
			target: model.Target{ID: "t1", CurrentStatus: model.StatusUp},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusUp, Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				targetRepo.EXPECT().TouchLastChecked(ctx, "t1", now).Return(nil)
			},
			expectedChanged: false,
			expectedFrom:    model.StatusUp,
			expectedTo:      model.StatusUp,
		},
		{
			name:   "Up to down opens an incident",
			target: model.Target{ID: "t1", CurrentStatus: model.StatusUp},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusDown, ErrorMessage: "HTTP 503", Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().GetOpen(ctx, "t1").Return(model.Incident{}, apperrors.ErrNoOpenIncident)
				incidentRepo.EXPECT().Open(ctx, "t1", "HTTP 503", now).Return(openIncident, nil)
				targetRepo.EXPECT().UpdateStatus(ctx, "t1", model.StatusDown, now, now).Return(nil)
			},
			expectedChanged: true,
			expectedFrom:    model.StatusUp,
			expectedTo:      model.StatusDown,
			expectOpened:    true,
		},
		{
			name:   "Empty previous status is treated as unknown",
			target: model.Target{ID: "t1"},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusUp, Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().GetOpen(ctx, "t1").Return(model.Incident{}, apperrors.ErrNoOpenIncident)
				targetRepo.EXPECT().UpdateStatus(ctx, "t1", model.StatusUp, now, now).Return(nil)
			},
			expectedChanged: true,
			expectedFrom:    model.StatusUnknown,
			expectedTo:      model.StatusUp,
		},
		{
			name:   "Down to certificate_invalid updates root cause without a second incident",
			target: model.Target{ID: "t1", CurrentStatus: model.StatusDown},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusCertificateInvalid, ErrorMessage: "Certificate expired or not yet valid", Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().GetOpen(ctx, "t1").Return(openIncident, nil)
				incidentRepo.EXPECT().UpdateRootCause(ctx, "inc-1", "Certificate expired or not yet valid").Return(nil)
				targetRepo.EXPECT().UpdateStatus(ctx, "t1", model.StatusCertificateInvalid, now, now).Return(nil)
			},
			expectedChanged: true,
			expectedFrom:    model.StatusDown,
			expectedTo:      model.StatusCertificateInvalid,
		},
		{
			name:   "Down to up closes the open incident",
			target: model.Target{ID: "t1", CurrentStatus: model.StatusDown},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusUp, Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().GetOpen(ctx, "t1").Return(openIncident, nil)
				incidentRepo.EXPECT().Close(ctx, "inc-1", now).Return(closedIncident, nil)
				targetRepo.EXPECT().UpdateStatus(ctx, "t1", model.StatusUp, now, now).Return(nil)
			},
			expectedChanged: true,
			expectedFrom:    model.StatusDown,
			expectedTo:      model.StatusUp,
			expectClosed:    true,
		},
		{
			name:   "Incident store failure surfaces as an error",
			target: model.Target{ID: "t1", CurrentStatus: model.StatusUp},
			result: model.CheckResult{TargetID: "t1", Status: model.StatusDown, ErrorMessage: "HTTP 503", Timestamp: now},
			setupMocks: func(targetRepo *mockrepository.MockTargetRepository, incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().GetOpen(ctx, "t1").Return(model.Incident{}, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockTargetRepo := mockrepository.NewMockTargetRepository(ctrl)
			mockIncidentRepo := mockrepository.NewMockIncidentRepository(ctrl)
			tc.setupMocks(mockTargetRepo, mockIncidentRepo)

			tracker := NewTracker(mockTargetRepo, mockIncidentRepo, zap.NewNop())

			transition, err := tracker.Apply(ctx, tc.target, tc.result)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedChanged, transition.Changed)
			assert.Equal(t, tc.expectedFrom, transition.From)
			assert.Equal(t, tc.expectedTo, transition.To)
			if tc.expectOpened {
				assert.NotNil(t, transition.OpenedIncident)
			} else {
				assert.Nil(t, transition.OpenedIncident)
			}
			if tc.expectClosed {
				assert.NotNil(t, transition.ClosedIncident)
			} else {
				assert.Nil(t, transition.ClosedIncident)
			}
		})
	}
}

func TestRootCause(t *testing.T) {
	code := 503
	assert.Equal(t, "Connection Timeout", rootCause(model.CheckResult{ErrorMessage: "Connection Timeout"}))
	assert.Equal(t, "HTTP 503", rootCause(model.CheckResult{HTTPStatus: &code}))
	assert.Equal(t, "unknown cause", rootCause(model.CheckResult{}))
}
