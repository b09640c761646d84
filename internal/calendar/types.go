package calendar

import calendar "google.golang.org/api/calendar/v3"

// DefaultCalendarID is the calendar all operations target.
const DefaultCalendarID = "primary"

// DefaultTimeZone labels incoming event times that carry no zone of their
// own. Eastern time, matching the calendars this server was built for.
const DefaultTimeZone = "America/New_York"

// ListQuery holds the optional filters for listing events. Zero values are
// simply not sent upstream.
type ListQuery struct {
	// MaxResults caps the page size; zero means the API default.
	MaxResults int64
	// TimeMin and TimeMax are RFC3339 bounds on the event start/end.
	TimeMin string
	TimeMax string
	// Query is a free-text search across event fields.
	Query string
	// PageToken is the opaque continuation token from a previous page.
	// It is passed through verbatim; the client never paginates on its own.
	PageToken string
}

// EventPage is one page of raw events plus the continuation token, empty
// when this is the last page.
type EventPage struct {
	Events        []*calendar.Event
	NextPageToken string
}

// EventInput is the caller-supplied content of a new event. Start and End
// are RFC3339 timestamps; a trailing Z is stripped and the time labeled
// with TimeZone instead.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       string
	End         string
	TimeZone    string
	Attendees   []string
}

// EventPatch describes a partial update. Nil pointer fields are left
// untouched on the stored event; non-nil fields overwrite, including
// overwriting with an empty string.
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Start       *string
	End         *string
	// TimeZone labels a patched Start or End; ignored when neither is set.
	TimeZone string
	// Attendees replaces the attendee list entirely when non-nil.
	Attendees []string
}
