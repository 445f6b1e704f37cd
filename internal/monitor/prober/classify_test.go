package prober

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"uptime-monitor/internal/monitor/model"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name            string
		target          model.Target
		outcome         Outcome
		expectedStatus  string
		expectedKind    string
		expectedMessage string
	}{
		{
			name:            "Transport error maps to down",
			target:          model.Target{},
			outcome:         Outcome{RequestErr: errors.New("dial tcp: connection refused")},
			expectedStatus:  model.StatusDown,
			expectedKind:    model.ErrorKindTransport,
			expectedMessage: "dial tcp: connection refused",
		},
		{
			name:            "Timeout uses the canonical message",
			target:          model.Target{},
			outcome:         Outcome{RequestErr: errors.New("context deadline exceeded"), TimedOut: true},
			expectedStatus:  model.StatusDown,
			expectedKind:    model.ErrorKindTransport,
			expectedMessage: "Connection Timeout",
		},
		{
			name:            "Unexpected status code maps to down",
			target:          model.Target{ExpectedStatus: 200},
			outcome:         Outcome{StatusCode: 503},
			expectedStatus:  model.StatusDown,
			expectedKind:    model.ErrorKindProtocol,
			expectedMessage: "HTTP 503",
		},
		{
			name:           "Expected non 200 status is up",
			target:         model.Target{ExpectedStatus: 401},
			outcome:        Outcome{StatusCode: 401},
			expectedStatus: model.StatusUp,
		},
		{
			name:           "Zero expected status defaults to 200",
			target:         model.Target{},
			outcome:        Outcome{StatusCode: 200},
			expectedStatus: model.StatusUp,
		},
		{
			name:            "Missing search string maps to down",
			target:          model.Target{ExpectedStatus: 200, SearchString: "Welcome"},
			outcome:         Outcome{StatusCode: 200, BodyChecked: true, BodyMatched: false},
			expectedStatus:  model.StatusDown,
			expectedKind:    model.ErrorKindProtocol,
			expectedMessage: "Search string not found",
		},
		{
			name:            "Invalid certificate downgrades an otherwise up result",
			target:          model.Target{ExpectedStatus: 200, CheckCertificate: true},
			outcome:         Outcome{StatusCode: 200, CertChecked: true, CertValid: false},
			expectedStatus:  model.StatusCertificateInvalid,
			expectedKind:    model.ErrorKindCertificate,
			expectedMessage: "Certificate expired or not yet valid",
		},
		{
			name:            "Certificate inspection error carries its message",
			target:          model.Target{ExpectedStatus: 200, CheckCertificate: true},
			outcome:         Outcome{StatusCode: 200, CertChecked: true, CertValid: false, CertErr: errors.New("tls handshake failed")},
			expectedStatus:  model.StatusCertificateInvalid,
			expectedKind:    model.ErrorKindCertificate,
			expectedMessage: "tls handshake failed",
		},
		{
			name:            "Status mismatch wins over certificate check",
			target:          model.Target{ExpectedStatus: 200, CheckCertificate: true},
			outcome:         Outcome{StatusCode: 500, CertChecked: true, CertValid: false},
			expectedStatus:  model.StatusDown,
			expectedKind:    model.ErrorKindProtocol,
			expectedMessage: "HTTP 500",
		},
		{
			name:           "Valid certificate keeps up",
			target:         model.Target{ExpectedStatus: 200, CheckCertificate: true},
			outcome:        Outcome{StatusCode: 200, CertChecked: true, CertValid: true},
			expectedStatus: model.StatusUp,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.target, tc.outcome)

			assert.Equal(t, tc.expectedStatus, got.Status)
			assert.Equal(t, tc.expectedKind, got.ErrorKind)
			assert.Equal(t, tc.expectedMessage, got.ErrorMessage)
		})
	}
}

func TestCertWithinValidity(t *testing.T) {
	now := time.Now()
	cert := &model.CertificateSummary{
		ValidFrom: now.Add(-time.Hour),
		ValidTo:   now.Add(time.Hour),
	}
	assert.True(t, certWithinValidity(cert, now))
	assert.False(t, certWithinValidity(cert, now.Add(2*time.Hour)))
	assert.False(t, certWithinValidity(cert, now.Add(-2*time.Hour)))
}
