package model

import "time"

const (
	NotificationKindDown               = "down"
	NotificationKindUp                 = "up"
	NotificationKindCertificateExpiry  = "certificate_expiry"
	NotificationKindRegistrationExpiry = "registration_expiry"
)

// NotificationRecord is an append-only log entry used to enforce throttle
// windows and for audit.
type NotificationRecord struct {
	ID        string `gorm:"primaryKey"`
	TargetID  string
	Kind      string
	Recipient string
	SentAt    time.Time
}
