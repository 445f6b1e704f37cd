package notifier

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
	mockmail "uptime-monitor/pkg/mail"
)

func TestNotifier_NotifyTransition(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	duration := int64(600)
	openedIncident := &model.Incident{ID: "inc-1", TargetID: "t1", RootCause: "HTTP 503", StartedAt: now}
	closedIncident := &model.Incident{ID: "inc-1", TargetID: "t1", EndedAt: &now, DurationSeconds: &duration}

	testCases := []struct {
		name       string
		target     model.Target
		result     model.CheckResult
		transition model.Transition
		setupMocks func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender)
		expectErr  bool
	}{
		{
			name:       "New incident sends the down mail",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyDown: true, NotifyAddress: "ops@example.com"},
			result:     model.CheckResult{Status: model.StatusDown},
			transition: model.Transition{Changed: true, From: model.StatusUp, To: model.StatusDown, OpenedIncident: openedIncident},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				mailSender.EXPECT().
					SendMail([]string{"ops@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				notificationRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "Down notifications disabled",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyDown: false},
			result:     model.CheckResult{Status: model.StatusDown},
			transition: model.Transition{Changed: true, From: model.StatusUp, To: model.StatusDown, OpenedIncident: openedIncident},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:       "Substate change without a new incident stays silent",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyDown: true},
			result:     model.CheckResult{Status: model.StatusCertificateInvalid},
			transition: model.Transition{Changed: true, From: model.StatusDown, To: model.StatusCertificateInvalid},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:       "Recovery sends the up mail with downtime",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyUp: true, NotifyAddress: "ops@example.com"},
			result:     model.CheckResult{Status: model.StatusUp},
			transition: model.Transition{Changed: true, From: model.StatusDown, To: model.StatusUp, ClosedIncident: closedIncident},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				mailSender.EXPECT().
					SendMail([]string{"ops@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(to []string, subject, htmlBody, textBody string, attachments []mockmail.Attachment) error {
						assert.Contains(t, textBody, "Downtime: 10m0s")
						return nil
					})
				notificationRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "First check of a healthy target stays silent",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyUp: true, NotifyAddress: "ops@example.com"},
			result:     model.CheckResult{Status: model.StatusUp},
			transition: model.Transition{Changed: true, From: model.StatusUnknown, To: model.StatusUp},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:       "Unchanged transition is a no-op",
			target:     model.Target{ID: "t1", NotifyDown: true, NotifyUp: true},
			result:     model.CheckResult{Status: model.StatusUp},
			transition: model.Transition{Changed: false, From: model.StatusUp, To: model.StatusUp},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:       "Mail failure surfaces as a dispatch error",
			target:     model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyDown: true, NotifyAddress: "ops@example.com"},
			result:     model.CheckResult{Status: model.StatusDown},
			transition: model.Transition{Changed: true, From: model.StatusUp, To: model.StatusDown, OpenedIncident: openedIncident},
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				mailSender.EXPECT().
					SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockNotificationRepo := mockrepository.NewMockNotificationRepository(ctrl)
			mockMailSender := mockmail.NewMockSender(ctrl)
			tc.setupMocks(mockNotificationRepo, mockMailSender)

			notifier := NewNotifier(mockMailSender, mockNotificationRepo, zap.NewNop(), "fallback@example.com", 15, 30)

			err := notifier.NotifyTransition(ctx, tc.target, tc.result, tc.transition)

			if tc.expectErr {
				assert.Error(t, err)
				var dispatchErr *apperrors.DispatchError
				assert.ErrorAs(t, err, &dispatchErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotifier_NotifyExpiries(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	certResult := func(days int) model.CheckResult {
		return model.CheckResult{
			Status:      model.StatusUp,
			Certificate: &model.CertificateSummary{Issuer: "R3", ValidTo: now.AddDate(0, 0, days), DaysRemaining: days},
		}
	}
	regResult := func(days int) model.CheckResult {
		return model.CheckResult{
			Status:       model.StatusUp,
			Registration: &model.RegistrationSummary{Registrar: "Example Registrar", ExpiresAt: now.AddDate(0, 0, days), DaysRemaining: days},
		}
	}

	testCases := []struct {
		name       string
		target     model.Target
		result     model.CheckResult
		setupMocks func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender)
		expectErr  bool
	}{
		{
			name:   "Certificate inside warning window fires once",
			target: model.Target{ID: "t1", Name: "api", NotifyCertExpiry: true, NotifyAddress: "ops@example.com"},
			result: certResult(10),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				notificationRepo.EXPECT().
					HasRecent(ctx, "t1", model.NotificationKindCertificateExpiry, certSuppressionWindow).
					Return(false, nil)
				mailSender.EXPECT().
					SendMail([]string{"ops@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				notificationRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Recent certificate warning is suppressed",
			target: model.Target{ID: "t1", Name: "api", NotifyCertExpiry: true, NotifyAddress: "ops@example.com"},
			result: certResult(10),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				notificationRepo.EXPECT().
					HasRecent(ctx, "t1", model.NotificationKindCertificateExpiry, certSuppressionWindow).
					Return(true, nil)
			},
		},
		{
			name:       "Certificate outside warning window stays silent",
			target:     model.Target{ID: "t1", Name: "api", NotifyCertExpiry: true},
			result:     certResult(60),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:       "Already expired certificate is not an expiry warning",
			target:     model.Target{ID: "t1", Name: "api", NotifyCertExpiry: true},
			result:     certResult(0),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {},
		},
		{
			name:   "Registration inside warning window fires",
			target: model.Target{ID: "t1", Name: "api", NotifyRegExpiry: true, NotifyAddress: "ops@example.com"},
			result: regResult(20),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				notificationRepo.EXPECT().
					HasRecent(ctx, "t1", model.NotificationKindRegistrationExpiry, regSuppressionWindow).
					Return(false, nil)
				mailSender.EXPECT().
					SendMail([]string{"ops@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				notificationRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Throttle lookup failure surfaces",
			target: model.Target{ID: "t1", Name: "api", NotifyCertExpiry: true},
			result: certResult(10),
			setupMocks: func(notificationRepo *mockrepository.MockNotificationRepository, mailSender *mockmail.MockSender) {
				notificationRepo.EXPECT().
					HasRecent(ctx, "t1", model.NotificationKindCertificateExpiry, certSuppressionWindow).
					Return(false, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockNotificationRepo := mockrepository.NewMockNotificationRepository(ctrl)
			mockMailSender := mockmail.NewMockSender(ctrl)
			tc.setupMocks(mockNotificationRepo, mockMailSender)

			notifier := NewNotifier(mockMailSender, mockNotificationRepo, zap.NewNop(), "fallback@example.com", 15, 30)

			err := notifier.NotifyExpiries(ctx, tc.target, tc.result)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotifier_DispatchFallsBackToDefaultRecipient(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockNotificationRepo := mockrepository.NewMockNotificationRepository(ctrl)
	mockMailSender := mockmail.NewMockSender(ctrl)

	mockMailSender.EXPECT().
		SendMail([]string{"fallback@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockNotificationRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	notifier := NewNotifier(mockMailSender, mockNotificationRepo, zap.NewNop(), "fallback@example.com", 15, 30)

	incident := &model.Incident{ID: "inc-1", TargetID: "t1", RootCause: "HTTP 503", StartedAt: time.Now()}
	err := notifier.NotifyTransition(ctx,
		model.Target{ID: "t1", Name: "api", URL: "https://api.example.com", NotifyDown: true},
		model.CheckResult{Status: model.StatusDown},
		model.Transition{Changed: true, From: model.StatusUp, To: model.StatusDown, OpenedIncident: incident})

	assert.NoError(t, err)
}
