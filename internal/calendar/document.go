package calendar

import (
	"fmt"
	"strings"

	calendar "google.golang.org/api/calendar/v3"
)

// EventDocument is the formatted representation of a calendar event that
// the tools return: a markdown rendering plus the fields a caller is most
// likely to act on.
type EventDocument struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	URL            string `json:"url"`
	Content        string `json:"content"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Location       string `json:"location"`
	AttendeesCount int    `json:"attendees_count"`
}

// FormatEventDocument renders an event as a markdown document. Absent
// fields are omitted from the rendering rather than shown empty, except
// start/end which fall back to "Not specified".
func FormatEventDocument(event *calendar.Event) EventDocument {
	title := event.Summary
	if title == "" {
		title = "(No title)"
	}

	kind := event.Kind
	if kind == "" {
		kind = "calendar#event"
	}

	startTime := eventTimeString(event.Start)
	endTime := eventTimeString(event.End)

	var attendeeLines []string
	for _, attendee := range event.Attendees {
		name := attendee.DisplayName
		if name == "" {
			name = attendee.Email
		}
		if name == "" {
			name = "Unknown"
		}
		status := attendee.ResponseStatus
		if status == "" {
			status = "needsAction"
		}
		organizer := ""
		if attendee.Organizer {
			organizer = " (Organizer)"
		}
		attendeeLines = append(attendeeLines, fmt.Sprintf("%s - %s%s", name, status, organizer))
	}

	conferenceLink := ""
	if event.ConferenceData != nil {
		for _, entry := range event.ConferenceData.EntryPoints {
			if entry.EntryPointType == "video" {
				conferenceLink = entry.Uri
				break
			}
		}
	}

	status := event.Status
	if status == "" {
		status = "confirmed"
	}

	var content strings.Builder
	fmt.Fprintf(&content, "# %s\n\n", title)
	if event.Description != "" {
		fmt.Fprintf(&content, "**Description:** %s\n\n", event.Description)
	}
	fmt.Fprintf(&content, "**Start:** %s\n", startTime)
	fmt.Fprintf(&content, "**End:** %s\n\n", endTime)
	if event.Location != "" {
		fmt.Fprintf(&content, "**Location:** %s\n\n", event.Location)
	}
	if len(attendeeLines) > 0 {
		fmt.Fprintf(&content, "**Attendees (%d):**\n", len(attendeeLines))
		for _, line := range attendeeLines {
			fmt.Fprintf(&content, "  - %s\n", line)
		}
		content.WriteString("\n")
	}
	if conferenceLink != "" {
		fmt.Fprintf(&content, "**Video Conference:** %s\n\n", conferenceLink)
	}
	fmt.Fprintf(&content, "**Status:** %s\n", status)
	if event.HtmlLink != "" {
		fmt.Fprintf(&content, "**Link:** %s\n", event.HtmlLink)
	}

	return EventDocument{
		ID:             event.Id,
		Kind:           kind,
		Title:          title,
		URL:            event.HtmlLink,
		Content:        strings.TrimSpace(content.String()),
		StartTime:      startTime,
		EndTime:        endTime,
		Location:       event.Location,
		AttendeesCount: len(event.Attendees),
	}
}

// eventTimeString prefers the timed form, then the all-day date.
func eventTimeString(t *calendar.EventDateTime) string {
	if t != nil {
		if t.DateTime != "" {
			return t.DateTime
		}
		if t.Date != "" {
			return t.Date
		}
	}
	return "Not specified"
}
