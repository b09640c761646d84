package ticketmaster

import "time"

// TimeRange is an inclusive [Start, End] interval.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the interval other lies entirely within r,
// inclusive on both ends.
func (r TimeRange) Contains(other TimeRange) bool {
	return !r.Start.After(other.Start) && !other.End.After(r.End)
}

// WithinRanges reports whether the event's schedule falls completely inside
// at least one of the given ranges. Partial overlap does not count: an event
// crossing a range boundary is excluded even when most of it fits.
//
// Events whose schedule cannot be determined (no start date, malformed
// date/time) are never a match.
func WithinRanges(event Event, ranges []TimeRange) bool {
	schedule, ok, err := EventSchedule(event)
	if err != nil || !ok {
		return false
	}

	for _, r := range ranges {
		if r.Contains(schedule) {
			return true
		}
	}

	return false
}

// coveringWindow collapses a set of ranges into the single smallest interval
// spanning all of them. Used to issue one upstream query for multiple
// disjoint windows. Returns false for an empty set.
func coveringWindow(ranges []TimeRange) (TimeRange, bool) {
	if len(ranges) == 0 {
		return TimeRange{}, false
	}

	window := ranges[0]
	for _, r := range ranges[1:] {
		if r.Start.Before(window.Start) {
			window.Start = r.Start
		}
		if r.End.After(window.End) {
			window.End = r.End
		}
	}

	return window, true
}
