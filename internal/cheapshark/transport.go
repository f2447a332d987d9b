package cheapshark

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// LoggingTransport implements http.RoundTripper and logs every request with a
// generated request id.
type LoggingTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
}

// NewLoggingTransport wraps next, falling back to http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper, logger *zap.Logger) LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return LoggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := xid.New().String()
	fields := []zap.Field{
		zap.String("op", "cheapshark.RoundTrip"),
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	t.logger.Debug("http request", fields...)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		t.logger.Warn("http request failed", append(fields, zap.Duration("elapsed", elapsed), zap.Error(err))...)
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	fields = append(fields, zap.Int("status", resp.StatusCode), zap.Duration("elapsed", elapsed))
	if resp.StatusCode >= 400 {
		t.logger.Warn("http response", fields...)
	} else {
		t.logger.Info("http response", fields...)
	}
	return resp, nil
}
