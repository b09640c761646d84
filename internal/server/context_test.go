package server

import (
	"context"
	"testing"

	"github.com/eventscout/eventscout/internal/calendar"
	"github.com/eventscout/eventscout/internal/ticketmaster"
)

func TestServerContextLifecycle(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.IsShutdown() {
		t.Error("fresh context reports shutdown")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("context not marked shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context not cancelled after shutdown")
	}

	// Second shutdown is a no-op.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContextTicketmasterClient(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.TicketmasterClient() != nil {
		t.Error("expected nil client before injection")
	}

	client := ticketmaster.NewClient("test-key")
	sc.SetTicketmasterClient(client)
	if sc.TicketmasterClient() != client {
		t.Error("injected client not returned")
	}
}

func TestServerContextCalendarFactory(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	var gotToken string
	sc.SetCalendarClientFactory(func(ctx context.Context, accessToken string) (*calendar.Client, error) {
		gotToken = accessToken
		return nil, nil
	})

	if _, err := sc.NewCalendarClient(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("NewCalendarClient() error = %v", err)
	}
	if gotToken != "tok-abc" {
		t.Errorf("factory received token %q", gotToken)
	}
}
