package prober

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"uptime-monitor/internal/monitor/model"
)

const (
	connectTimeout   = 10 * time.Second
	minProbeTimeout  = 1 * time.Second
	maxProbeTimeout  = 60 * time.Second
	maxRedirects     = 5
	maxBodyBytes     = 4 << 20
	defaultUserAgent = "uptime-monitor/1.0"
)

// Prober executes one health check against one target. It never returns an
// error: every failure mode is folded into the classified CheckResult.
type Prober interface {
	Probe(ctx context.Context, target model.Target) model.CheckResult
}

type prober struct {
	userAgent string
	logger    *zap.Logger
}

func NewProber(userAgent string, logger *zap.Logger) Prober {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &prober{
		userAgent: userAgent,
		logger:    logger,
	}
}

func clampTimeout(seconds int) time.Duration {
	timeout := time.Duration(seconds) * time.Second
	if timeout < minProbeTimeout {
		return minProbeTimeout
	}
	if timeout > maxProbeTimeout {
		return maxProbeTimeout
	}
	return timeout
}

func (p *prober) Probe(ctx context.Context, target model.Target) model.CheckResult {
	startedAt := time.Now().UTC()
	outcome, latencyMs := p.doHTTP(ctx, target)

	if target.CheckCertificate && strings.HasPrefix(strings.ToLower(target.URL), "https://") {
		outcome.CertChecked = true
		if host, port, err := hostPort(target.URL); err != nil {
			outcome.CertErr = err
		} else {
			outcome.Cert, outcome.CertErr = InspectCertificate(host, port)
		}
		outcome.CertValid = outcome.CertErr == nil && outcome.Cert != nil && certWithinValidity(outcome.Cert, time.Now())
	}

	var registration *model.RegistrationSummary
	if target.CheckRegistration {
		host, _, err := hostPort(target.URL)
		if err == nil {
			registration, err = LookupRegistration(host)
		}
		if err != nil {
			// Registry lookups are best effort. Unsupported TLDs and
			// unparseable responses are skipped, never surfaced as failures.
			p.logger.Debug("registration lookup skipped",
				zap.String("target_id", target.ID),
				zap.Error(err))
		}
	}

	cls := Classify(target, outcome)

	result := model.CheckResult{
		TargetID:     target.ID,
		Timestamp:    startedAt,
		Status:       cls.Status,
		LatencyMs:    latencyMs,
		ErrorKind:    cls.ErrorKind,
		ErrorMessage: cls.ErrorMessage,
		Certificate:  outcome.Cert,
		Registration: registration,
	}
	if cls.Status == model.StatusUp {
		result.StatusNumeric = 1
	}
	if outcome.RequestErr == nil {
		code := outcome.StatusCode
		result.HTTPStatus = &code
	}
	return result
}

// doHTTP issues the configured request and reports the raw outcome plus the
// wall-clock latency in milliseconds with microsecond precision.
func (p *prober) doHTTP(ctx context.Context, target model.Target) (Outcome, float64) {
	var outcome Outcome

	method := target.Method
	if method == "" {
		method = model.MethodGet
	}

	client := &http.Client{
		Timeout: clampTimeout(target.TimeoutSeconds),
		Transport: &http.Transport{
			// Reachability is probed with verification off; certificate
			// validity is assessed separately by InspectCertificate.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// via includes the initial request, so a chain of maxRedirects
			// redirects is still followed.
			if len(via) > maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, method, target.URL, nil)
	if err != nil {
		outcome.RequestErr = fmt.Errorf("invalid request: %w", err)
		return outcome, 0
	}
	req.Header.Set("User-Agent", p.userAgent)

	start := time.Now()
	resp, err := client.Do(req)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		outcome.RequestErr = err
		outcome.TimedOut = isTimeout(err)
		return outcome, latencyMs
	}
	defer resp.Body.Close()

	outcome.StatusCode = resp.StatusCode
	if target.SearchString != "" && method != model.MethodHead {
		outcome.BodyChecked = true
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if readErr != nil {
			outcome.RequestErr = readErr
			outcome.TimedOut = isTimeout(readErr)
			return outcome, latencyMs
		}
		outcome.BodyMatched = strings.Contains(string(body), target.SearchString)
	}
	return outcome, latencyMs
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func hostPort(rawURL string) (host string, port string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	host = u.Hostname()
	if host == "" {
		return "", "", fmt.Errorf("no host in url %q", rawURL)
	}
	port = u.Port()
	if port == "" {
		port = "443"
	}
	return host, port, nil
}
