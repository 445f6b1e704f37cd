package response

import "time"

type Response struct {
	Message string `json:"message"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}

type LastRunResponse struct {
	LastRunAt *time.Time `json:"last_run_at"`
}

type FleetSummaryResponse struct {
	Total              int `json:"total"`
	Up                 int `json:"up"`
	Down               int `json:"down"`
	Degraded           int `json:"degraded"`
	CertificateInvalid int `json:"certificate_invalid"`
	Unknown            int `json:"unknown"`
	Paused             int `json:"paused"`
}

type TargetResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	CurrentStatus string     `json:"current_status"`
	StatusSince   *time.Time `json:"status_since"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
	Paused        bool       `json:"paused"`
}

type IncidentResponse struct {
	ID              string     `json:"id"`
	TargetID        string     `json:"target_id"`
	RootCause       string     `json:"root_cause"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationSeconds *int64     `json:"duration_seconds"`
}
