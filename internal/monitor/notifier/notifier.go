package notifier

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
	"uptime-monitor/internal/monitor/repository"
	"uptime-monitor/pkg/mail"
)

const (
	certSuppressionWindow = 7 * 24 * time.Hour
	regSuppressionWindow  = 30 * 24 * time.Hour
)

// Notifier decides whether a transition or expiry warning should fire a
// notification and delegates delivery to the mail sender. Dispatch failures
// are reported to the caller but never unwind the transition that triggered
// them.
type Notifier interface {
	NotifyTransition(ctx context.Context, target model.Target, result model.CheckResult, transition model.Transition) error
	NotifyExpiries(ctx context.Context, target model.Target, result model.CheckResult) error
}

type notifier struct {
	mailSender       mail.Sender
	notificationRepo repository.NotificationRepository
	logger           *zap.Logger
	defaultRecipient string
	certWarnDays     int
	regWarnDays      int
}

func NewNotifier(mailSender mail.Sender, notificationRepo repository.NotificationRepository, logger *zap.Logger, defaultRecipient string, certWarnDays int, regWarnDays int) Notifier {
	return &notifier{
		mailSender:       mailSender,
		notificationRepo: notificationRepo,
		logger:           logger,
		defaultRecipient: defaultRecipient,
		certWarnDays:     certWarnDays,
		regWarnDays:      regWarnDays,
	}
}

// NotifyTransition fires the down mail when a new incident opens and the up
// mail when one closes. A transition to up without a closed incident, like the
// first check of a healthy target, stays silent. Incident opens are never
// throttled: each new incident notifies exactly once.
func (n *notifier) NotifyTransition(ctx context.Context, target model.Target, result model.CheckResult, transition model.Transition) error {
	if !transition.Changed {
		return nil
	}

	if transition.OpenedIncident != nil && target.NotifyDown {
		subject := fmt.Sprintf("[%s] %s is %s", target.Name, target.URL, result.Status)
		textBody := fmt.Sprintf(
			"Target: %s\nURL: %s\nStatus: %s\nCause: %s\nSince: %s",
			target.Name, target.URL, result.Status, transition.OpenedIncident.RootCause,
			transition.OpenedIncident.StartedAt.Format(time.RFC3339))
		return n.dispatch(ctx, target, model.NotificationKindDown, subject, textBody)
	}

	if transition.To == model.StatusUp && transition.ClosedIncident != nil && target.NotifyUp {
		subject := fmt.Sprintf("[%s] %s is up again", target.Name, target.URL)
		textBody := fmt.Sprintf("Target: %s\nURL: %s\nStatus: up", target.Name, target.URL)
		if transition.ClosedIncident.DurationSeconds != nil {
			textBody += fmt.Sprintf("\nDowntime: %s", (time.Duration(*transition.ClosedIncident.DurationSeconds) * time.Second).String())
		}
		return n.dispatch(ctx, target, model.NotificationKindUp, subject, textBody)
	}

	return nil
}

// NotifyExpiries fires the certificate and registration expiry warnings,
// each at most once per suppression window per target.
func (n *notifier) NotifyExpiries(ctx context.Context, target model.Target, result model.CheckResult) error {
	if target.NotifyCertExpiry && result.Certificate != nil {
		days := result.Certificate.DaysRemaining
		if days > 0 && days <= n.certWarnDays {
			sent, err := n.notificationRepo.HasRecent(ctx, target.ID, model.NotificationKindCertificateExpiry, certSuppressionWindow)
			if err != nil {
				return fmt.Errorf("Notifier.NotifyExpiries: %w", err)
			}
			if !sent {
				subject := fmt.Sprintf("[%s] certificate expires in %d days", target.Name, days)
				textBody := fmt.Sprintf(
					"Target: %s\nURL: %s\nIssuer: %s\nValid until: %s\nDays remaining: %d",
					target.Name, target.URL, result.Certificate.Issuer,
					result.Certificate.ValidTo.Format("2006-01-02"), days)
				if err = n.dispatch(ctx, target, model.NotificationKindCertificateExpiry, subject, textBody); err != nil {
					return err
				}
			}
		}
	}

	if target.NotifyRegExpiry && result.Registration != nil {
		days := result.Registration.DaysRemaining
		if days > 0 && days <= n.regWarnDays {
			sent, err := n.notificationRepo.HasRecent(ctx, target.ID, model.NotificationKindRegistrationExpiry, regSuppressionWindow)
			if err != nil {
				return fmt.Errorf("Notifier.NotifyExpiries: %w", err)
			}
			if !sent {
				subject := fmt.Sprintf("[%s] domain registration expires in %d days", target.Name, days)
				textBody := fmt.Sprintf(
					"Target: %s\nURL: %s\nRegistrar: %s\nExpires: %s\nDays remaining: %d",
					target.Name, target.URL, result.Registration.Registrar,
					result.Registration.ExpiresAt.Format("2006-01-02"), days)
				if err = n.dispatch(ctx, target, model.NotificationKindRegistrationExpiry, subject, textBody); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (n *notifier) dispatch(ctx context.Context, target model.Target, kind string, subject string, textBody string) error {
	recipient := target.Recipient(n.defaultRecipient)
	if recipient == "" {
		n.logger.Warn("no recipient configured, skipping notification",
			zap.String("target_id", target.ID),
			zap.String("kind", kind))
		return nil
	}

	if err := n.mailSender.SendMail([]string{recipient}, subject, htmlBody(subject, textBody), textBody, nil); err != nil {
		return apperrors.NewDispatchError(target.ID, kind, err)
	}

	if err := n.notificationRepo.Append(ctx, model.NotificationRecord{
		TargetID:  target.ID,
		Kind:      kind,
		Recipient: recipient,
		SentAt:    time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("Notifier.dispatch: %w", err)
	}
	n.logger.Info("notification sent",
		zap.String("target_id", target.ID),
		zap.String("kind", kind),
		zap.String("recipient", recipient))
	return nil
}

func htmlBody(subject string, textBody string) string {
	body := fmt.Sprintf("<h3>%s</h3><pre>%s</pre>", subject, textBody)
	return fmt.Sprintf("<body>%s</body>", body)
}
