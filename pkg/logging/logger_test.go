package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(InfoLevel, &buf).With(String("service", "test"))

	logger.Debug("hidden")
	logger.Info("frame rendered",
		Int("pixels", 12),
		Float("ratio", 0.5),
		Bool("day", true),
		Duration("elapsed", 1500*time.Microsecond),
		Error(errors.New("boom")))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	expected := map[string]any{
		"service": "test",
		"level":   "info",
		"message": "frame rendered",
		"pixels":  float64(12),
		"ratio":   0.5,
		"day":     true,
		"elapsed": 1.5,
		"error":   "boom",
	}
	for key, value := range expected {
		if entry[key] != value {
			t.Errorf("Expected %s=%v, got %v", key, value, entry[key])
		}
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("Expected a timestamp")
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(DebugLevel, &buf)
	child := parent.With(String("session", "abc"))

	parent.Info("parent")
	child.Info("child")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[0]["session"]; ok {
		t.Error("Expected parent entry without session field")
	}
	if entries[1]["session"] != "abc" {
		t.Errorf("Expected child session field, got %v", entries[1]["session"])
	}
}

func TestLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := New(InfoLevel, &buf)

	logger.Printf("pass %d done\n", 3)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["message"] != "pass 3 done" {
		t.Errorf("Expected trimmed printf message, got %v", entries)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  Level
		expectErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"loud", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("Expected error=%v, got %v", tt.expectErr, err)
			}
			if level != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, level)
			}
		})
	}
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := New(DebugLevel, &buf)

	var seen *Logger
	handler := HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("Expected propagated request id, got %q", got)
	}
	if seen == nil || seen.fields[RequestIDField] != "req-42" {
		t.Error("Expected request-scoped logger in context")
	}

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["path"] != "/api/health" || entries[0][RequestIDField] != "req-42" {
		t.Errorf("Expected one request log entry, got %v", entries)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Header().Get(RequestIDHeader)) != 16 {
		t.Errorf("Expected generated 16-char request id, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) != L() {
		t.Error("Expected global logger for a bare context")
	}
}
