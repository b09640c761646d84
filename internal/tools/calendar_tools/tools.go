package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/eventscout/eventscout/internal/calendar"
	"github.com/eventscout/eventscout/internal/server"
	"github.com/eventscout/eventscout/internal/tools/common"
)

// getCalendarClient resolves the access token for the request and builds a
// per-call Calendar client
func getCalendarClient(ctx context.Context, args map[string]any, sc *server.ServerContext) (*calendar.Client, error) {
	token, err := common.GoogleTokenFromArgs(args)
	if err != nil {
		return nil, err
	}

	client, err := sc.NewCalendarClient(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client: %w", err)
	}
	return client, nil
}

// jsonResult renders a tool result as indented JSON
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RegisterCalendarTools registers all Calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := RegisterEventTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}

	return nil
}
