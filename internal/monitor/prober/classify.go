package prober

import (
	"fmt"

	"uptime-monitor/internal/monitor/model"
)

// Outcome is the raw result of one probe before classification.
type Outcome struct {
	StatusCode  int
	RequestErr  error
	TimedOut    bool
	BodyChecked bool
	BodyMatched bool
	CertChecked bool
	CertValid   bool
	CertErr     error
	Cert        *model.CertificateSummary
}

// Classification is the coarse health verdict for one probe.
type Classification struct {
	Status       string
	ErrorKind    string
	ErrorMessage string
}

// Classify maps a raw probe outcome to a status. Expected-status matching is
// the primary oracle: operators may deliberately expect 401 or 403 on
// protected health endpoints. Certificate validity can only downgrade an
// otherwise-up result, never upgrade a failing one.
func Classify(target model.Target, o Outcome) Classification {
	if o.RequestErr != nil {
		message := o.RequestErr.Error()
		if o.TimedOut {
			message = "Connection Timeout"
		}
		return Classification{
			Status:       model.StatusDown,
			ErrorKind:    model.ErrorKindTransport,
			ErrorMessage: message,
		}
	}

	expected := target.ExpectedStatus
	if expected == 0 {
		expected = 200
	}
	if o.StatusCode != expected {
		return Classification{
			Status:       model.StatusDown,
			ErrorKind:    model.ErrorKindProtocol,
			ErrorMessage: fmt.Sprintf("HTTP %d", o.StatusCode),
		}
	}

	if o.BodyChecked && !o.BodyMatched {
		return Classification{
			Status:       model.StatusDown,
			ErrorKind:    model.ErrorKindProtocol,
			ErrorMessage: "Search string not found",
		}
	}

	if o.CertChecked && !o.CertValid {
		message := "Certificate expired or not yet valid"
		if o.CertErr != nil {
			message = o.CertErr.Error()
		}
		return Classification{
			Status:       model.StatusCertificateInvalid,
			ErrorKind:    model.ErrorKindCertificate,
			ErrorMessage: message,
		}
	}

	return Classification{Status: model.StatusUp}
}
