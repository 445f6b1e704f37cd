package prober

import (
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"
	"time"

	apperrors "uptime-monitor/internal/monitor/errors"
	"uptime-monitor/internal/monitor/model"
)

const (
	whoisPort    = "43"
	whoisTimeout = 10 * time.Second
)

// registryServers maps a top-level label to its registry whois server.
// Domains with absent entries are silently skipped.
var registryServers = map[string]string{
	"com":  "whois.verisign-grs.com",
	"net":  "whois.verisign-grs.com",
	"org":  "whois.pir.org",
	"info": "whois.afilias.net",
	"biz":  "whois.biz",
	"io":   "whois.nic.io",
	"co":   "whois.nic.co",
	"me":   "whois.nic.me",
	"dev":  "whois.nic.google",
	"app":  "whois.nic.google",
	"xyz":  "whois.nic.xyz",
	"uk":   "whois.nic.uk",
	"de":   "whois.denic.de",
	"fr":   "whois.nic.fr",
	"nl":   "whois.domain-registry.nl",
	"eu":   "whois.eu",
	"us":   "whois.nic.us",
}

// Registry responses are free text; the expiry label varies by registry. The
// first match of an "Expir*Date" or "Expires" label wins.
var (
	expiryDatePattern = regexp.MustCompile(`(?i)expir[a-z]*[\s_-]*date[^:]*:\s*(\S+)`)
	expiresPattern    = regexp.MustCompile(`(?i)expires[^:\r\n]*:?\s*(\S+)`)
	registrarPattern  = regexp.MustCompile(`(?i)registrar(?:\s+name)?\s*:\s*(.+)`)
)

var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
	"02.01.2006",
}

// LookupRegistration queries the registry whois server for the domain's
// top-level label and extracts the expiry date by best-effort pattern
// matching. Every failure is a skip, never a probe failure.
func LookupRegistration(domain string) (*model.RegistrationSummary, error) {
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return nil, fmt.Errorf("lookup %q: %w", domain, apperrors.ErrUnsupportedTLD)
	}
	server, ok := registryServers[labels[len(labels)-1]]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", domain, apperrors.ErrUnsupportedTLD)
	}

	response, err := queryWhois(server, domain)
	if err != nil {
		return nil, fmt.Errorf("lookup %q via %s: %w", domain, server, err)
	}
	return ParseRegistration(response)
}

func queryWhois(server string, domain string) (string, error) {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(server, whoisPort), whoisTimeout)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	if err = conn.SetDeadline(time.Now().Add(whoisTimeout)); err != nil {
		return "", err
	}
	if _, err = conn.Write([]byte(domain + "\r\n")); err != nil {
		return "", err
	}
	b, err := io.ReadAll(conn)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseRegistration extracts the expiry date and registrar from a raw
// registry response.
func ParseRegistration(response string) (*model.RegistrationSummary, error) {
	raw := firstSubmatch(expiryDatePattern, response)
	if raw == "" {
		raw = firstSubmatch(expiresPattern, response)
	}
	if raw == "" {
		return nil, apperrors.ErrExpiryNotFound
	}

	expiresAt, ok := parseExpiryDate(raw)
	if !ok {
		return nil, fmt.Errorf("unparseable expiry date %q: %w", raw, apperrors.ErrExpiryNotFound)
	}

	summary := &model.RegistrationSummary{
		ExpiresAt:     expiresAt,
		DaysRemaining: daysRemaining(expiresAt, time.Now()),
	}
	if registrar := firstSubmatch(registrarPattern, response); registrar != "" {
		summary.Registrar = strings.TrimSpace(registrar)
	}
	return summary, nil
}

func firstSubmatch(pattern *regexp.Regexp, s string) string {
	m := pattern.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func parseExpiryDate(raw string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
