package ticketmaster_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/eventscout/eventscout/internal/instrumentation"
	"github.com/eventscout/eventscout/internal/server"
	"github.com/eventscout/eventscout/internal/ticketmaster"
	"github.com/eventscout/eventscout/internal/tools/common"
)

// Defaults for the concert search location.
const (
	DefaultCity      = "Toronto"
	DefaultStateCode = "ON"
)

// errorRecord is the structured error shape the generic search returns in
// place of results. Upstream failures become data, not tool errors.
type errorRecord struct {
	Error string `json:"error"`
}

// jsonResult renders a tool result as indented JSON
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RegisterTicketmasterTools registers Ticketmaster search tools with the MCP server
func RegisterTicketmasterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Concert range search tool
	getConcertsTool := mcp.NewTool("ticketmaster_get_concerts",
		mcp.WithDescription("Find concerts that take place entirely within a time window. Events that only partially overlap the window are excluded."),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Window start (RFC3339 format, e.g., '2025-06-01T18:00:00Z')"),
		),
		mcp.WithString("endTime",
			mcp.Required(),
			mcp.Description("Window end (RFC3339 format, e.g., '2025-06-01T23:00:00Z')"),
		),
		mcp.WithString("city",
			mcp.Description("City to search in (default: 'Toronto')"),
		),
		mcp.WithString("stateCode",
			mcp.Description("State or province code (default: 'ON')"),
		),
		mcp.WithString("genre",
			mcp.Description("Optional genre filter, e.g., 'Rock'"),
		),
	)

	s.AddTool(getConcertsTool, common.InstrumentedToolHandlerWithService(
		"ticketmaster_get_concerts", instrumentation.ServiceTicketmaster, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetConcerts(ctx, request, sc)
		}))

	// Generic event search tool
	searchEventsTool := mcp.NewTool("ticketmaster_search_events",
		mcp.WithDescription("Search Ticketmaster events by keyword, location, category, and date range"),
		mcp.WithString("keyword",
			mcp.Description("Search keyword, e.g., an artist or team name"),
		),
		mcp.WithString("city",
			mcp.Description("City to search in"),
		),
		mcp.WithString("state",
			mcp.Description("State or province code, e.g., 'NY'"),
		),
		mcp.WithString("postalCode",
			mcp.Description("Postal code to search around"),
		),
		mcp.WithString("countryCode",
			mcp.Description("Country code (default: 'US')"),
		),
		mcp.WithString("category",
			mcp.Description("Event category: Music, Sports, Arts & Theatre, Film, Miscellaneous"),
		),
		mcp.WithString("genre",
			mcp.Description("Genre filter, e.g., 'Rock', 'Comedy'"),
		),
		mcp.WithString("startDate",
			mcp.Description("Earliest event date (YYYY-MM-DD)"),
		),
		mcp.WithString("endDate",
			mcp.Description("Latest event date (YYYY-MM-DD)"),
		),
		mcp.WithNumber("size",
			mcp.Description("Number of results to return (default: 10, max: 200)"),
		),
	)

	s.AddTool(searchEventsTool, common.InstrumentedToolHandlerWithService(
		"ticketmaster_search_events", instrumentation.ServiceTicketmaster, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEvents(ctx, request, sc)
		}))

	return nil
}

func handleGetConcerts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	startStr, ok := args["startTime"].(string)
	if !ok || startStr == "" {
		return mcp.NewToolResultError("startTime is required"), nil
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid startTime format: %v", err)), nil
	}

	endStr, ok := args["endTime"].(string)
	if !ok || endStr == "" {
		return mcp.NewToolResultError("endTime is required"), nil
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid endTime format: %v", err)), nil
	}

	query := ticketmaster.ConcertQuery{
		City:      DefaultCity,
		StateCode: DefaultStateCode,
		Ranges:    []ticketmaster.TimeRange{{Start: start, End: end}},
	}
	if city, ok := args["city"].(string); ok && city != "" {
		query.City = city
	}
	if state, ok := args["stateCode"].(string); ok && state != "" {
		query.StateCode = state
	}
	if genre, ok := args["genre"].(string); ok {
		query.Genre = genre
	}

	client := sc.TicketmasterClient()
	if client == nil {
		return mcp.NewToolResultError("Ticketmaster client not configured: set TICKETMASTER_API_KEY"), nil
	}

	// SearchConcerts never fails; request errors degrade to an empty list.
	return jsonResult(client.SearchConcerts(ctx, query))
}

func handleSearchEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := ticketmaster.SearchQuery{}
	if keyword, ok := args["keyword"].(string); ok {
		query.Keyword = keyword
	}
	if city, ok := args["city"].(string); ok {
		query.City = city
	}
	if state, ok := args["state"].(string); ok {
		query.StateCode = state
	}
	if postal, ok := args["postalCode"].(string); ok {
		query.PostalCode = postal
	}
	if country, ok := args["countryCode"].(string); ok {
		query.CountryCode = country
	}
	if category, ok := args["category"].(string); ok {
		query.Category = category
	}
	if genre, ok := args["genre"].(string); ok {
		query.Genre = genre
	}
	if startDate, ok := args["startDate"].(string); ok {
		query.StartDate = startDate
	}
	if endDate, ok := args["endDate"].(string); ok {
		query.EndDate = endDate
	}
	if size, ok := args["size"].(float64); ok {
		query.Size = int(size)
	}

	client := sc.TicketmasterClient()
	if client == nil {
		return jsonResult(errorRecord{Error: "Ticketmaster client not configured: set TICKETMASTER_API_KEY"})
	}

	result, err := client.SearchEvents(ctx, query)
	if err != nil {
		// Failures become a structured record the caller can inspect.
		return jsonResult(errorRecord{Error: err.Error()})
	}

	return jsonResult(result)
}
