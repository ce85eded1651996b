package httpclient

import (
	"net/http"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound request with its outcome and latency.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient").With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
// When the settings describe a proxy, every request is routed through it.
func NewClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if u := settings.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
		logger.Named("httpclient").Info("Outbound proxy enabled", zap.String("proxy", settings.HostPort()))
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
