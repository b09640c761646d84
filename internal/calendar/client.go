package calendar

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar service for a single bearer token.
// Clients are cheap and are constructed per call; nothing is cached.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client authenticated with a pre-obtained
// OAuth2 access token. No token refresh happens here: the token is used
// as-is and expiry surfaces as an API error on the call that hits it.
// Extra options are appended after the token source, so tests can override
// the endpoint and HTTP client.
func NewClient(ctx context.Context, accessToken string, opts ...option.ClientOption) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	allOpts := append([]option.ClientOption{option.WithTokenSource(source)}, opts...)

	svc, err := calendar.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListEvents returns one page of events from the primary calendar, expanded
// to single instances and ordered by start time. The page token round-trips
// opaquely; fetching further pages is the caller's job.
func (c *Client) ListEvents(ctx context.Context, query ListQuery) (*EventPage, error) {
	call := c.svc.Events.List(DefaultCalendarID).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	if query.MaxResults > 0 {
		call = call.MaxResults(query.MaxResults)
	}
	if query.TimeMin != "" {
		call = call.TimeMin(query.TimeMin)
	}
	if query.TimeMax != "" {
		call = call.TimeMax(query.TimeMax)
	}
	if query.Query != "" {
		call = call.Q(query.Query)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &EventPage{
		Events:        events.Items,
		NextPageToken: events.NextPageToken,
	}, nil
}

// GetEvent retrieves a single event by ID.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*calendar.Event, error) {
	event, err := c.svc.Events.Get(DefaultCalendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// CreateEvent inserts a new event on the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*calendar.Event, error) {
	timeZone := input.TimeZone
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       eventTime(input.Start, timeZone),
		End:         eventTime(input.End, timeZone),
	}
	if input.Location != "" {
		event.Location = input.Location
	}
	if len(input.Attendees) > 0 {
		event.Attendees = toAttendees(input.Attendees)
	}

	created, err := c.svc.Events.Insert(DefaultCalendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// UpdateEvent applies a partial update with read-modify-write semantics: the
// current event is fetched, only the supplied fields are overlaid, and the
// whole document is written back. Last writer wins; there is no concurrency
// control.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, patch EventPatch) (*calendar.Event, error) {
	existing, err := c.svc.Events.Get(DefaultCalendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing event: %w", err)
	}

	timeZone := patch.TimeZone
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	if patch.Summary != nil {
		existing.Summary = *patch.Summary
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Location != nil {
		existing.Location = *patch.Location
	}
	if patch.Start != nil {
		existing.Start = eventTime(*patch.Start, timeZone)
	}
	if patch.End != nil {
		existing.End = eventTime(*patch.End, timeZone)
	}
	if patch.Attendees != nil {
		existing.Attendees = toAttendees(patch.Attendees)
	}

	updated, err := c.svc.Events.Update(DefaultCalendarID, eventID, existing).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes an event from the primary calendar.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(DefaultCalendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// eventTime builds a timed EventDateTime. A trailing Z is stripped so the
// timestamp is interpreted in the given zone rather than as UTC.
func eventTime(value, timeZone string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: strings.TrimSuffix(value, "Z"),
		TimeZone: timeZone,
	}
}

func toAttendees(emails []string) []*calendar.EventAttendee {
	attendees := make([]*calendar.EventAttendee, 0, len(emails))
	for _, email := range emails {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}
	return attendees
}
