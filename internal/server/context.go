package server

import (
	"context"
	"sync"

	"github.com/eventscout/eventscout/internal/calendar"
	"github.com/eventscout/eventscout/internal/instrumentation"
	"github.com/eventscout/eventscout/internal/ticketmaster"
)

// CalendarClientFactory builds a Calendar client for a bearer token.
// Clients are constructed per call and never cached: the token comes in
// with the request and may differ between requests.
type CalendarClientFactory func(ctx context.Context, accessToken string) (*calendar.Client, error)

// ServerContext holds the shared dependencies for the MCP server.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	ticketmaster    *ticketmaster.Client
	calendarFactory CalendarClientFactory

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		calendarFactory: func(ctx context.Context, accessToken string) (*calendar.Client, error) {
			return calendar.NewClient(ctx, accessToken)
		},
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SetTicketmasterClient sets the Ticketmaster client.
func (sc *ServerContext) SetTicketmasterClient(client *ticketmaster.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.ticketmaster = client
}

// TicketmasterClient returns the Ticketmaster client, or nil if none was set.
func (sc *ServerContext) TicketmasterClient() *ticketmaster.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ticketmaster
}

// SetCalendarClientFactory overrides how Calendar clients are built.
// Tests use this to point clients at a stub server.
func (sc *ServerContext) SetCalendarClientFactory(factory CalendarClientFactory) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarFactory = factory
}

// NewCalendarClient builds a Calendar client for the given access token.
func (sc *ServerContext) NewCalendarClient(ctx context.Context, accessToken string) (*calendar.Client, error) {
	sc.mu.RLock()
	factory := sc.calendarFactory
	sc.mu.RUnlock()
	return factory(ctx, accessToken)
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// AuditLogger returns the audit logger, or nil if none was configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
