package calendar

import (
	"strings"
	"testing"

	calendar "google.golang.org/api/calendar/v3"
)

func TestFormatEventDocument(t *testing.T) {
	event := &calendar.Event{
		Id:          "ev123",
		Kind:        "calendar#event",
		Summary:     "Design Review",
		Description: "Quarterly review of the roadmap",
		Location:    "Room 4B",
		Status:      "confirmed",
		HtmlLink:    "https://calendar.google.com/event?eid=ev123",
		Start:       &calendar.EventDateTime{DateTime: "2026-02-10T14:00:00-05:00"},
		End:         &calendar.EventDateTime{DateTime: "2026-02-10T15:00:00-05:00"},
		Attendees: []*calendar.EventAttendee{
			{DisplayName: "Ada", Email: "ada@example.com", ResponseStatus: "accepted", Organizer: true},
			{Email: "grace@example.com"},
		},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	doc := FormatEventDocument(event)

	if doc.ID != "ev123" {
		t.Errorf("id = %q", doc.ID)
	}
	if doc.Title != "Design Review" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.URL != event.HtmlLink {
		t.Errorf("url = %q", doc.URL)
	}
	if doc.StartTime != "2026-02-10T14:00:00-05:00" || doc.EndTime != "2026-02-10T15:00:00-05:00" {
		t.Errorf("times = %q / %q", doc.StartTime, doc.EndTime)
	}
	if doc.AttendeesCount != 2 {
		t.Errorf("attendees count = %d", doc.AttendeesCount)
	}

	for _, want := range []string{
		"# Design Review",
		"**Description:** Quarterly review of the roadmap",
		"**Location:** Room 4B",
		"Ada - accepted (Organizer)",
		"grace@example.com - needsAction",
		"**Video Conference:** https://meet.google.com/abc-defg-hij",
		"**Status:** confirmed",
	} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("content missing %q\ncontent:\n%s", want, doc.Content)
		}
	}
	// The phone entry point must not leak in as the conference link.
	if strings.Contains(doc.Content, "tel:") {
		t.Errorf("content contains phone entry point:\n%s", doc.Content)
	}
}

func TestFormatEventDocument_Defaults(t *testing.T) {
	doc := FormatEventDocument(&calendar.Event{Id: "bare"})

	if doc.Title != "(No title)" {
		t.Errorf("title = %q, expected (No title)", doc.Title)
	}
	if doc.Kind != "calendar#event" {
		t.Errorf("kind = %q", doc.Kind)
	}
	if doc.StartTime != "Not specified" || doc.EndTime != "Not specified" {
		t.Errorf("times = %q / %q", doc.StartTime, doc.EndTime)
	}
	if !strings.Contains(doc.Content, "**Status:** confirmed") {
		t.Errorf("content missing default status:\n%s", doc.Content)
	}
	if strings.Contains(doc.Content, "**Description:**") || strings.Contains(doc.Content, "**Location:**") {
		t.Errorf("content renders absent sections:\n%s", doc.Content)
	}
}

func TestFormatEventDocument_AllDay(t *testing.T) {
	doc := FormatEventDocument(&calendar.Event{
		Summary: "Company Holiday",
		Start:   &calendar.EventDateTime{Date: "2026-07-01"},
		End:     &calendar.EventDateTime{Date: "2026-07-02"},
	})

	if doc.StartTime != "2026-07-01" || doc.EndTime != "2026-07-02" {
		t.Errorf("times = %q / %q, expected all-day dates", doc.StartTime, doc.EndTime)
	}
}
