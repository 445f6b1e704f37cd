package model

import "time"

const (
	ErrorKindTransport    = "transport"
	ErrorKindProtocol     = "protocol"
	ErrorKindCertificate  = "certificate"
	ErrorKindRegistration = "registration"
)

// CertificateSummary describes the leaf certificate seen on the last probe.
type CertificateSummary struct {
	Issuer        string
	ValidFrom     time.Time
	ValidTo       time.Time
	DaysRemaining int
}

// RegistrationSummary describes the domain registration state extracted from
// the registry response on the last probe.
type RegistrationSummary struct {
	Registrar     string
	ExpiresAt     time.Time
	DaysRemaining int
}

// CheckResult is the immutable record of one probe. Rows older than the
// retention window are purged by the scheduler.
type CheckResult struct {
	ID            int64 `gorm:"primaryKey"`
	TargetID      string
	Timestamp     time.Time
	Status        string
	StatusNumeric int // 1 for up, 0 otherwise
	HTTPStatus    *int
	LatencyMs     float64
	ErrorKind     string
	ErrorMessage  string
	Certificate   *CertificateSummary  `gorm:"embedded;embeddedPrefix:cert_"`
	Registration  *RegistrationSummary `gorm:"embedded;embeddedPrefix:reg_"`
}

// IsUp reports whether the check was classified as up.
func (c CheckResult) IsUp() bool {
	return c.Status == StatusUp
}
