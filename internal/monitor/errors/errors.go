package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrTargetNotFound   = errors.New("target not found")
	ErrNoOpenIncident   = errors.New("no open incident for target")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrUnsupportedTLD   = errors.New("no registry server known for top-level domain")
	ErrExpiryNotFound   = errors.New("no expiry date found in registry response")
)

// DispatchError reports a failed notification send. It never unwinds the
// status transition that triggered the notification.
type DispatchError struct {
	TargetID string
	Kind     string
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s notification for target %s: %v", e.Kind, e.TargetID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func NewDispatchError(targetID string, kind string, err error) error {
	return &DispatchError{
		TargetID: targetID,
		Kind:     kind,
		Err:      err,
	}
}

// ElasticSearchError carries the error payload of a failed search request.
type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
