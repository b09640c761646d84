// Package instrumentation provides OpenTelemetry-based observability for
// eventscout: metrics, distributed tracing, and audit logging for MCP tool
// invocations and upstream vendor API calls.
//
// # Components
//
//   - Provider: wires up meter and tracer providers from Config, with
//     prometheus, otlp, or stdout exporters
//   - Metrics: counters and histograms for HTTP requests, vendor API
//     operations (Google Calendar, Ticketmaster), and tool invocations
//   - Tracing helpers: span builders and starters with consistent
//     attribute naming
//   - AuditLogger: structured slog records for every tool invocation
//
// # Configuration
//
// Configuration comes from environment variables with sensible defaults;
// see DefaultConfig. The whole subsystem can be disabled with
// INSTRUMENTATION_ENABLED=false, in which case all recorders become no-ops.
//
// # Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer provider.Shutdown(ctx)
//
//	metrics := provider.Metrics()
//	metrics.RecordToolInvocation(ctx, "calendar_list_events", instrumentation.StatusSuccess, elapsed)
package instrumentation
