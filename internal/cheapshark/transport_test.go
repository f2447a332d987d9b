package cheapshark

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingTransport_LogsStatusAndRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	client := &http.Client{Transport: NewLoggingTransport(nil, zap.New(core))}

	for _, path := range []string{"/ok", "/missing"} {
		resp, err := client.Get(server.URL + path)
		if err != nil {
			t.Fatalf("Get(%s) returned error: %v", path, err)
		}
		_ = resp.Body.Close()
	}

	responses := logs.FilterMessage("http response").All()
	if len(responses) != 2 {
		t.Fatalf("logged %d responses, want 2", len(responses))
	}
	if responses[0].Level != zapcore.InfoLevel || responses[1].Level != zapcore.WarnLevel {
		t.Fatalf("levels = %v/%v, want info/warn", responses[0].Level, responses[1].Level)
	}
	const xidLen = 20
	for _, entry := range responses {
		id, ok := entry.ContextMap()["request_id"].(string)
		if !ok || len(id) != xidLen {
			t.Fatalf("request_id = %#v, want %d char xid", entry.ContextMap()["request_id"], xidLen)
		}
	}
	if got := responses[1].ContextMap()["status"]; got != int64(http.StatusNotFound) {
		t.Fatalf("status = %#v, want 404", got)
	}
}

func TestLoggingTransport_WrapsTransportErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client := &http.Client{Transport: NewLoggingTransport(nil, zap.New(core))}

	if _, err := client.Get("http://127.0.0.1:1/unreachable"); err == nil {
		t.Fatalf("Get returned nil error, want connection error")
	}
	if logs.FilterMessage("http request failed").Len() != 1 {
		t.Fatalf("want one failure entry, got %d", logs.FilterMessage("http request failed").Len())
	}
}
