package model

import "time"

const (
	StatusUnknown            = "unknown"
	StatusUp                 = "up"
	StatusDown               = "down"
	StatusDegraded           = "degraded"
	StatusCertificateInvalid = "certificate_invalid"
)

const (
	MethodGet  = "GET"
	MethodHead = "HEAD"
	MethodPost = "POST"
)

// Target is a monitored endpoint. The management layer owns every field except
// CurrentStatus, StatusSince and LastCheckedAt, which are written exclusively
// by the engine.
type Target struct {
	ID                string `gorm:"default:(-)"`
	Name              string
	URL               string
	Method            string
	ExpectedStatus    int
	SearchString      string
	IntervalSeconds   int // minimum 60
	TimeoutSeconds    int // clamped to [1,60] at probe time
	Paused            bool
	CheckCertificate  bool
	CheckRegistration bool
	NotifyDown        bool
	NotifyUp          bool
	NotifyCertExpiry  bool
	NotifyRegExpiry   bool
	NotifyAddress     string
	CurrentStatus     string
	StatusSince       *time.Time
	LastCheckedAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Recipient returns the notification address for the target, falling back to
// the given default when no override is configured.
func (t Target) Recipient(fallback string) string {
	if t.NotifyAddress != "" {
		return t.NotifyAddress
	}
	return fallback
}
