package model

import "time"

// Incident is one continuous non-up episode for a target. At most one open
// incident (EndedAt == nil) exists per target at any time.
type Incident struct {
	ID              string `gorm:"primaryKey"`
	TargetID        string
	RootCause       string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Open reports whether the incident has not ended yet.
func (i Incident) Open() bool {
	return i.EndedAt == nil
}
