package instrumentation

import (
	"context"
	"testing"
	"time"
)

func TestNewProviderDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	if provider.Enabled() {
		t.Error("provider should be disabled")
	}
	if provider.Metrics() == nil {
		t.Error("disabled provider must still return a usable no-op metrics recorder")
	}
	if provider.Tracer("test") == nil {
		t.Error("disabled provider must return a noop tracer")
	}
	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewProviderPrometheus(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	if !provider.Enabled() {
		t.Error("provider should be enabled")
	}
	if provider.Metrics() == nil {
		t.Error("metrics recorder is nil")
	}
	if provider.PrometheusHandler() == nil {
		t.Error("prometheus exporter not exposed")
	}
	if provider.Tracer("test") == nil {
		t.Error("tracer is nil")
	}
}

func TestNewProviderUnsupportedExporter(t *testing.T) {
	ctx := context.Background()

	_, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		Enabled:         true,
		MetricsExporter: "statsd",
		TracingExporter: ExporterNone,
	})
	if err == nil {
		t.Error("expected error for unsupported exporter")
	}
}
