package instrumentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestToolInvocationLifecycle(t *testing.T) {
	ti := NewToolInvocation("calendar_list_events").
		WithService(ServiceCalendar, "list")

	if ti.Tool != "calendar_list_events" {
		t.Errorf("tool = %q", ti.Tool)
	}
	if ti.StartTime.IsZero() {
		t.Error("start time not set")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("expected success")
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("status = %q", ti.Status())
	}
	if ti.Duration < 0 {
		t.Errorf("duration = %v", ti.Duration)
	}
}

func TestToolInvocationCompleteWithError(t *testing.T) {
	ti := NewToolInvocation("ticketmaster_search_events").
		WithService(ServiceTicketmaster, "searchEvents").
		CompleteWithError(errors.New("upstream timeout"))

	if ti.Success {
		t.Error("expected failure")
	}
	if ti.Status() != StatusError {
		t.Errorf("status = %q", ti.Status())
	}
	if ti.Error != "upstream timeout" {
		t.Errorf("error = %q", ti.Error)
	}
}

func TestToolInvocationLogAttrs(t *testing.T) {
	ti := &ToolInvocation{
		Tool:        "calendar_get_event",
		ServiceName: ServiceCalendar,
		Operation:   "get",
		Duration:    100 * time.Millisecond,
		Success:     true,
		TraceID:     "abc123",
	}

	attrs := ti.LogAttrs()
	keys := make(map[string]bool, len(attrs))
	for _, attr := range attrs {
		keys[attr.Key] = true
	}

	for _, want := range []string{"tool", "duration", "success", "service", "operation", "trace_id"} {
		if !keys[want] {
			t.Errorf("missing attribute %q in %v", want, keys)
		}
	}
	// Absent fields must not appear.
	if keys["error"] || keys["span_id"] {
		t.Errorf("unexpected empty attributes present: %v", keys)
	}
}

func TestAuditLoggerLogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)

	audit.LogToolInvocation(NewToolInvocation("calendar_create_event").CompleteSuccess())

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("audit output is not JSON: %v", err)
	}
	if entry["msg"] != "tool_executed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["tool"] != "calendar_create_event" {
		t.Errorf("tool = %v", entry["tool"])
	}
}

func TestAuditLoggerFailureUsesWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)

	audit.LogToolInvocation(NewToolInvocation("calendar_delete_event").CompleteWithError(errors.New("boom")))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("audit output is not JSON: %v", err)
	}
	if entry["msg"] != "tool_failed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestAuditLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	audit.LogToolInvocation(NewToolInvocation("calendar_list_events").CompleteSuccess())

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger produced output: %s", buf.String())
	}
}
