package calendar_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/eventscout/eventscout/internal/calendar"
	"github.com/eventscout/eventscout/internal/instrumentation"
	"github.com/eventscout/eventscout/internal/server"
	"github.com/eventscout/eventscout/internal/tools/common"
)

// defaultListMaxResults is the page size used when the caller does not ask
// for one.
const defaultListMaxResults = 10

// listEventsResult is the JSON shape returned by calendar_list_events.
// Pagination fields appear only when another page exists.
type listEventsResult struct {
	Events        []calendar.EventDocument `json:"events"`
	TotalReturned int                      `json:"total_returned"`
	NextPageToken string                   `json:"next_page_token,omitempty"`
	HasMore       bool                     `json:"has_more,omitempty"`
}

// deleteEventResult is the JSON shape returned by calendar_delete_event.
type deleteEventResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterEventTools registers event CRUD tools with the MCP server
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List events tool (read-only, always available)
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List/search events on the primary calendar, one page at a time"),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of events to return (default: 10)"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Lower bound for the event start time (RFC3339 format, e.g., '2025-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Description("Upper bound for the event start time (RFC3339 format, e.g., '2025-01-31T23:59:59Z')"),
		),
		mcp.WithString("query",
			mcp.Description("Free-text search query to filter events"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Opaque token from a previous response to fetch the next page"),
		),
		mcp.WithString("accessToken",
			mcp.Description("Google OAuth access token. Falls back to the ACCESS_TOKEN environment variable."),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandlerWithService(
		"calendar_list_events", instrumentation.ServiceCalendar, "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	// Get event tool
	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get a single calendar event as a formatted document"),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
		mcp.WithString("accessToken",
			mcp.Description("Google OAuth access token. Falls back to the ACCESS_TOKEN environment variable."),
		),
	)

	s.AddTool(getEventTool, common.InstrumentedToolHandlerWithService(
		"calendar_get_event", instrumentation.ServiceCalendar, "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvent(ctx, request, sc)
		}))

	// Register mutating tools only if not in read-only mode
	if !readOnly {
		s.AddTool(newCreateEventTool(), common.InstrumentedToolHandlerWithService(
			"calendar_create_event", instrumentation.ServiceCalendar, "create", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateEvent(ctx, request, sc)
			}))

		s.AddTool(newUpdateEventTool(), common.InstrumentedToolHandlerWithService(
			"calendar_update_event", instrumentation.ServiceCalendar, "update", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateEvent(ctx, request, sc)
			}))

		s.AddTool(newDeleteEventTool(), common.InstrumentedToolHandlerWithService(
			"calendar_delete_event", instrumentation.ServiceCalendar, "delete", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleDeleteEvent(ctx, request, sc)
			}))
	}

	return nil
}

// The mutating tools carry a destructive hint so clients can ask for
// confirmation before changing or removing calendar data.

func newCreateEventTool() mcp.Tool {
	return mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a new event on the primary calendar"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC3339 format, e.g., '2025-01-15T14:00:00')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC3339 format, e.g., '2025-01-15T15:00:00')"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone for start/end (default: 'America/New_York')"),
		),
		mcp.WithString("accessToken",
			mcp.Description("Google OAuth access token. Falls back to the ACCESS_TOKEN environment variable."),
		),
	)
}

func newUpdateEventTool() mcp.Tool {
	return mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update an existing calendar event. Only the provided fields change; the rest of the event is preserved."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("title",
			mcp.Description("New event title"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC3339 format)"),
		),
		mcp.WithString("attendees",
			mcp.Description("New comma-separated list of attendee email addresses (replaces the existing list)"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone for start/end (default: 'America/New_York')"),
		),
		mcp.WithString("accessToken",
			mcp.Description("Google OAuth access token. Falls back to the ACCESS_TOKEN environment variable."),
		),
	)
}

func newDeleteEventTool() mcp.Tool {
	return mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete an event from the primary calendar"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
		mcp.WithString("accessToken",
			mcp.Description("Google OAuth access token. Falls back to the ACCESS_TOKEN environment variable."),
		),
	)
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := calendar.ListQuery{MaxResults: defaultListMaxResults}
	if maxVal, ok := args["maxResults"].(float64); ok && maxVal > 0 {
		query.MaxResults = int64(maxVal)
	}
	if timeMin, ok := args["timeMin"].(string); ok {
		query.TimeMin = timeMin
	}
	if timeMax, ok := args["timeMax"].(string); ok {
		query.TimeMax = timeMax
	}
	if queryVal, ok := args["query"].(string); ok {
		query.Query = queryVal
	}
	if pageToken, ok := args["pageToken"].(string); ok {
		query.PageToken = pageToken
	}

	client, err := getCalendarClient(ctx, args, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.ListEvents(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	documents := make([]calendar.EventDocument, 0, len(page.Events))
	for _, event := range page.Events {
		documents = append(documents, calendar.FormatEventDocument(event))
	}

	result := listEventsResult{
		Events:        documents,
		TotalReturned: len(documents),
	}
	if page.NextPageToken != "" {
		result.NextPageToken = page.NextPageToken
		result.HasMore = true
	}

	return jsonResult(result)
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := getCalendarClient(ctx, args, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := client.GetEvent(ctx, eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get event: %v", err)), nil
	}

	return jsonResult(calendar.FormatEventDocument(event))
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	start, ok := args["start"].(string)
	if !ok || start == "" {
		return mcp.NewToolResultError("start is required"), nil
	}

	end, ok := args["end"].(string)
	if !ok || end == "" {
		return mcp.NewToolResultError("end is required"), nil
	}

	input := calendar.EventInput{
		Summary: title,
		Start:   start,
		End:     end,
	}
	if desc, ok := args["description"].(string); ok {
		input.Description = desc
	}
	if loc, ok := args["location"].(string); ok {
		input.Location = loc
	}
	if tz, ok := args["timeZone"].(string); ok {
		input.TimeZone = tz
	}
	if attendees, ok := args["attendees"].(string); ok && attendees != "" {
		input.Attendees = parseAttendees(attendees)
	}

	client, err := getCalendarClient(ctx, args, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := client.CreateEvent(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	return jsonResult(calendar.FormatEventDocument(created))
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	patch := calendar.EventPatch{
		Summary:     stringArg(args, "title"),
		Description: stringArg(args, "description"),
		Location:    stringArg(args, "location"),
		Start:       stringArg(args, "start"),
		End:         stringArg(args, "end"),
	}
	if tz, ok := args["timeZone"].(string); ok {
		patch.TimeZone = tz
	}
	if attendees, ok := args["attendees"].(string); ok {
		patch.Attendees = parseAttendees(attendees)
	}

	client, err := getCalendarClient(ctx, args, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := client.UpdateEvent(ctx, eventID, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
	}

	return jsonResult(calendar.FormatEventDocument(updated))
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := getCalendarClient(ctx, args, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteEvent(ctx, eventID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
	}

	return jsonResult(deleteEventResult{
		Success: true,
		Message: fmt.Sprintf("Event %s deleted successfully", eventID),
	})
}

// stringArg returns a pointer to the string argument, or nil when the
// argument is absent. Present-but-empty strings count as set so callers can
// clear a field.
func stringArg(args map[string]any, key string) *string {
	if value, ok := args[key].(string); ok {
		return &value
	}
	return nil
}

// parseAttendees splits a comma-separated email list, dropping empty entries.
// The result is non-nil even when empty so an update can clear the list.
func parseAttendees(value string) []string {
	attendees := []string{}
	for _, part := range strings.Split(value, ",") {
		if email := strings.TrimSpace(part); email != "" {
			attendees = append(attendees, email)
		}
	}
	return attendees
}
