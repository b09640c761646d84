package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/eventscout/eventscout/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	tests := []struct {
		name     string
		readOnly bool
	}{
		{name: "full tool set", readOnly: false},
		{name: "read-only mode", readOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := server.NewServerContext(context.Background())
			if err != nil {
				t.Fatalf("NewServerContext() error = %v", err)
			}
			defer func() { _ = sc.Shutdown() }()

			mcpSrv := mcpserver.NewMCPServer("eventscout", "test",
				mcpserver.WithToolCapabilities(true),
			)

			if err := registerAllTools(mcpSrv, sc, tt.readOnly); err != nil {
				t.Errorf("registerAllTools() error = %v", err)
			}
		})
	}
}

func TestNewServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	for _, flag := range []string{"debug", "transport", "http-addr", "read-only", "metrics-enabled", "metrics-addr"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("serve command missing flag %q", flag)
		}
	}

	if got := cmd.Flags().Lookup("transport").DefValue; got != "stdio" {
		t.Errorf("transport default = %q", got)
	}
}
