package model

import "time"

// BatchSummary reports the outcome of one scheduler pass. Per-target failures
// are collected in Errors and never abort the batch.
type BatchSummary struct {
	StartedAt time.Time `json:"started_at"`
	Checked   int       `json:"checked"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Errors    []string  `json:"errors,omitempty"`
}

// Transition describes the status change produced by applying one check
// result to a target's ledger.
type Transition struct {
	Changed        bool
	From           string
	To             string
	OpenedIncident *Incident
	ClosedIncident *Incident
}
