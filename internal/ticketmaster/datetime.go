package ticketmaster

import (
	"fmt"
	"time"
)

const (
	// localDateLayout and localTimeLayout match the Discovery API's
	// dates.start.localDate / localTime fields.
	localDateLayout     = "2006-01-02"
	localDateTimeLayout = "2006-01-02T15:04:05"

	// defaultLocalTime is assumed when an event has a date but no time.
	defaultLocalTime = "00:00:00"

	// fallbackDuration is used when an event carries no explicit end;
	// it documents a typical concert length.
	fallbackDuration = 3 * time.Hour
)

// EventSchedule derives the [start, end] interval of an event from its
// nested date fields.
//
// All local dates and times are interpreted as UTC. The API labels them
// "local" but never carries an offset; treating them uniformly as UTC keeps
// interval comparisons consistent without attempting venue time zone lookup.
//
// The second return value is false when the event has no start date at all.
// A malformed date or time string returns an error; callers treat such an
// event as unparseable and exclude it from range-filtered results.
func EventSchedule(event Event) (TimeRange, bool, error) {
	if event.Dates == nil || event.Dates.Start == nil || event.Dates.Start.LocalDate == "" {
		return TimeRange{}, false, nil
	}

	start, err := parseLocal(event.Dates.Start.LocalDate, event.Dates.Start.LocalTime)
	if err != nil {
		return TimeRange{}, false, fmt.Errorf("invalid event start: %w", err)
	}

	// An explicit end needs both a date and a time; anything less falls
	// back to the fixed duration.
	if end := event.Dates.End; end != nil && end.LocalDate != "" && end.LocalTime != "" {
		endTime, err := parseLocal(end.LocalDate, end.LocalTime)
		if err != nil {
			return TimeRange{}, false, fmt.Errorf("invalid event end: %w", err)
		}
		return TimeRange{Start: start, End: endTime}, true, nil
	}

	return TimeRange{Start: start, End: start.Add(fallbackDuration)}, true, nil
}

// parseLocal combines a local date and time into a UTC instant.
// An empty time defaults to midnight.
func parseLocal(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = defaultLocalTime
	}
	return time.ParseInLocation(localDateTimeLayout, date+"T"+clock, time.UTC)
}
