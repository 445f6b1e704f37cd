package model

import "time"

const (
	ExpiryKindCertificate  = "certificate"
	ExpiryKindRegistration = "registration"
)

// ExpiryWatch is the latest known certificate or registration expiry state for
// a target. One row per (target, kind), overwritten on each check.
type ExpiryWatch struct {
	TargetID      string `gorm:"primaryKey"`
	Kind          string `gorm:"primaryKey"`
	ExpiresAt     *time.Time
	DaysRemaining int
	LastCheckedAt time.Time
	LastError     string
}
