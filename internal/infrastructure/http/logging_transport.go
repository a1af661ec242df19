package httpinfra

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// LoggingTransport logs every round trip at debug level. Header values are
// never logged.
type LoggingTransport struct {
	base   http.RoundTripper
	logger hclog.Logger
}

func NewLoggingTransport(base http.RoundTripper, logger hclog.Logger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &LoggingTransport{base: base, logger: logger}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Debug("request failed", "method", req.Method, "url", req.URL.Redacted(), "elapsed", time.Since(start), "error", err)
		return nil, err
	}
	t.logger.Debug("request done", "method", req.Method, "url", req.URL.Redacted(), "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

// NewClient builds the http.Client used by the CLI. A zero timeout means none.
func NewClient(timeout time.Duration, logger hclog.Logger) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewLoggingTransport(http.DefaultTransport, logger),
	}
}
