package prober

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"uptime-monitor/internal/monitor/model"
)

const tlsHandshakeTimeout = 30 * time.Second

// InspectCertificate opens an independent TLS connection to host:port and
// captures the leaf certificate. Verification is disabled so expired or
// mistrusted chains can still be inspected.
func InspectCertificate(host string, port string) (*model.CertificateSummary, error) {
	dialer := &net.Dialer{Timeout: tlsHandshakeTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(host, port), &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         host,
	})
	if err != nil {
		return nil, fmt.Errorf("tls handshake with %s:%s: %w", host, port, err)
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return nil, fmt.Errorf("no peer certificates presented by %s:%s", host, port)
	}
	leaf := certs[0]

	return &model.CertificateSummary{
		Issuer:        leaf.Issuer.CommonName,
		ValidFrom:     leaf.NotBefore,
		ValidTo:       leaf.NotAfter,
		DaysRemaining: daysRemaining(leaf.NotAfter, time.Now()),
	}, nil
}

// daysRemaining is max(0, floor((validTo - now) / 86400)).
func daysRemaining(validTo time.Time, now time.Time) int {
	remaining := validTo.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / (24 * time.Hour))
}

func certWithinValidity(cert *model.CertificateSummary, now time.Time) bool {
	return !now.Before(cert.ValidFrom) && now.Before(cert.ValidTo)
}
