package ticketmaster

import (
	"context"
	"net/url"
	"strconv"

	"github.com/eventscout/eventscout/internal/logging"
)

// queryTimeLayout is the timestamp format the Discovery API expects for
// startDateTime/endDateTime filters.
const queryTimeLayout = "2006-01-02T15:04:05Z"

// ConcertQuery describes a concert range search.
type ConcertQuery struct {
	City      string
	StateCode string
	// Ranges are the caller's time windows. An event must fall entirely
	// inside one of them to be returned.
	Ranges []TimeRange
	// Genre optionally narrows the search, e.g. "Rock".
	Genre string
}

// SearchConcerts finds concerts that fall completely within the query's
// time ranges.
//
// One upstream call is made using the covering window of all ranges; the
// results are then filtered against the original ranges, so an event inside
// the window but outside every individual sub-range is excluded. Vendor
// response order is preserved.
//
// Search failures degrade: any transport, status, or decode error is logged
// and an empty list returned. Callers never see the error.
func (c *Client) SearchConcerts(ctx context.Context, query ConcertQuery) []EventDetail {
	if len(query.Ranges) == 0 {
		return []EventDetail{}
	}

	window, _ := coveringWindow(query.Ranges)

	params := url.Values{}
	params.Set("city", query.City)
	params.Set("stateCode", query.StateCode)
	params.Set("classificationName", "Music")
	params.Set("startDateTime", window.Start.UTC().Format(queryTimeLayout))
	params.Set("endDateTime", window.End.UTC().Format(queryTimeLayout))
	params.Set("sort", "relevance,desc")
	params.Set("size", strconv.Itoa(ConcertPageSize))
	if query.Genre != "" {
		params.Set("genreName", query.Genre)
	}

	payload, err := c.getEvents(ctx, "searchConcerts", params)
	if err != nil {
		c.logger.Error("concert search failed, returning no results",
			logging.Operation("searchConcerts"),
			"city", query.City,
			"state_code", query.StateCode,
			logging.Err(err))
		return []EventDetail{}
	}

	details := []EventDetail{}
	if payload.Embedded == nil {
		return details
	}
	for _, event := range payload.Embedded.Events {
		if WithinRanges(event, query.Ranges) {
			details = append(details, ExtractEventDetails(event))
		}
	}

	return details
}

// SearchQuery describes a generic event search. All filters are optional;
// empty fields are simply not sent upstream.
type SearchQuery struct {
	Keyword     string
	City        string
	StateCode   string
	PostalCode  string
	CountryCode string
	// Category maps to classificationName: Music, Sports, Arts & Theatre,
	// Film, Miscellaneous.
	Category string
	Genre    string
	// StartDate and EndDate are calendar dates (YYYY-MM-DD); they expand
	// to the start and end of the named day.
	StartDate string
	EndDate   string
	// Size is the page size; zero means DefaultSearchSize, anything above
	// MaxPageSize is clamped.
	Size int
}

// DefaultSearchSize is the page size used when a search does not specify one.
const DefaultSearchSize = 10

// PriceInfo is the inline price summary of an event search result.
type PriceInfo struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

// VenueInfo is the inline venue summary of an event search result.
type VenueInfo struct {
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

// EventSummary is a lightweight search hit, deliberately smaller than
// EventDetail: no sale windows, no subgenre, venue and price inline.
type EventSummary struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	URL      string     `json:"url"`
	Date     string     `json:"date"`
	Time     string     `json:"time"`
	Category string     `json:"category,omitempty"`
	Genre    string     `json:"genre,omitempty"`
	Status   string     `json:"status,omitempty"`
	Price    *PriceInfo `json:"price_info,omitempty"`
	Venue    *VenueInfo `json:"venue,omitempty"`
}

// SearchResult is one page of generic search hits.
type SearchResult struct {
	Events         []EventSummary `json:"events"`
	TotalReturned  int            `json:"total_returned"`
	TotalAvailable int            `json:"total_available"`
}

// SearchEvents performs a parameterized event search. Unlike
// SearchConcerts, failures are returned to the caller; the tool layer
// reshapes them into a structured error record.
func (c *Client) SearchEvents(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	size := query.Size
	if size <= 0 {
		size = DefaultSearchSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	countryCode := query.CountryCode
	if countryCode == "" {
		countryCode = "US"
	}

	params := url.Values{}
	params.Set("size", strconv.Itoa(size))
	params.Set("countryCode", countryCode)
	if query.Keyword != "" {
		params.Set("keyword", query.Keyword)
	}
	if query.City != "" {
		params.Set("city", query.City)
	}
	if query.StateCode != "" {
		params.Set("stateCode", query.StateCode)
	}
	if query.PostalCode != "" {
		params.Set("postalCode", query.PostalCode)
	}
	if query.Category != "" {
		params.Set("classificationName", query.Category)
	}
	if query.Genre != "" {
		params.Set("genreName", query.Genre)
	}
	if query.StartDate != "" {
		params.Set("startDateTime", query.StartDate+"T00:00:00Z")
	}
	if query.EndDate != "" {
		params.Set("endDateTime", query.EndDate+"T23:59:59Z")
	}

	payload, err := c.getEvents(ctx, "searchEvents", params)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Events:         []EventSummary{},
		TotalAvailable: payload.Page.TotalElements,
	}
	if payload.Embedded != nil {
		for _, event := range payload.Embedded.Events {
			result.Events = append(result.Events, toEventSummary(event))
		}
	}
	result.TotalReturned = len(result.Events)

	return result, nil
}

// toEventSummary flattens a raw event into a search hit. Absent nested
// objects become empty fields rather than sentinels; the generic search
// surface passes absence through as-is.
func toEventSummary(event Event) EventSummary {
	summary := EventSummary{
		ID:   event.ID,
		Name: event.Name,
		URL:  event.URL,
		Date: NotAvailable,
	}

	if event.Dates != nil && event.Dates.Start != nil {
		if event.Dates.Start.LocalDate != "" {
			summary.Date = event.Dates.Start.LocalDate
		}
		summary.Time = event.Dates.Start.LocalTime
	}

	if len(event.Classifications) > 0 {
		c := event.Classifications[0]
		if c.Segment != nil {
			summary.Category = c.Segment.Name
		}
		if c.Genre != nil {
			summary.Genre = c.Genre.Name
		}
	}

	if event.Status != nil {
		summary.Status = event.Status.Code
	}

	if len(event.PriceRanges) > 0 {
		pr := event.PriceRanges[0]
		currency := pr.Currency
		if currency == "" {
			currency = "USD"
		}
		summary.Price = &PriceInfo{Min: pr.Min, Max: pr.Max, Currency: currency}
	}

	if event.Embedded != nil && len(event.Embedded.Venues) > 0 {
		venue := event.Embedded.Venues[0]
		info := &VenueInfo{Name: venue.Name}
		if venue.City != nil {
			info.City = venue.City.Name
		}
		if venue.State != nil {
			info.State = venue.State.StateCode
		}
		if venue.Country != nil {
			info.Country = venue.Country.CountryCode
		}
		if venue.Address != nil {
			info.Address = venue.Address.Line1
		}
		summary.Venue = info
	}

	return summary
}
