package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func captureJSON(t *testing.T, fn func(logger *slog.Logger)) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	fn(logger)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestWithHelpers(t *testing.T) {
	entry := captureJSON(t, func(logger *slog.Logger) {
		logger = WithTool(logger, "calendar_list_events")
		logger = WithService(logger, "calendar")
		logger = WithOperation(logger, "list")
		logger.Info("test")
	})

	if entry[KeyTool] != "calendar_list_events" {
		t.Errorf("tool = %v", entry[KeyTool])
	}
	if entry[KeyService] != "calendar" {
		t.Errorf("service = %v", entry[KeyService])
	}
	if entry[KeyOperation] != "list" {
		t.Errorf("operation = %v", entry[KeyOperation])
	}
}

func TestAttrHelpers(t *testing.T) {
	entry := captureJSON(t, func(logger *slog.Logger) {
		logger.Info("test",
			Tool("ticketmaster_get_concerts"),
			Service("ticketmaster"),
			Operation("searchConcerts"),
			Status(StatusSuccess))
	})

	if entry[KeyTool] != "ticketmaster_get_concerts" {
		t.Errorf("tool = %v", entry[KeyTool])
	}
	if entry[KeyStatus] != StatusSuccess {
		t.Errorf("status = %v", entry[KeyStatus])
	}
}

func TestErrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("test", Err(nil))

	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("nil error produced an error attribute: %s", buf.String())
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty", token: "", want: "<empty>"},
		{name: "short", token: "abc", want: "[token:3 chars]"},
		{name: "bearer token", token: "ya29.a0AfH6SMBx3", want: "[token:16 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeToken(tt.token)
			if got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, expected %q", tt.token, got, tt.want)
			}
			if tt.token != "" && strings.Contains(got, tt.token) {
				t.Errorf("sanitized output leaks token content: %q", got)
			}
		})
	}
}
