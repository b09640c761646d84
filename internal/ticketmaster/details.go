package ticketmaster

import (
	"strconv"
	"strings"
	"time"
)

// NotAvailable is the sentinel substituted for genuinely absent upstream
// data. Consumers match on this exact string, so it must not change.
const NotAvailable = "N/A"

// EventDetail is the flattened record returned by concert search. Every
// field falls back to the NotAvailable sentinel when the vendor omits the
// underlying data.
type EventDetail struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	ConcertStart string `json:"concert_start"`
	ConcertEnd   string `json:"concert_end"`
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`
	Category     string `json:"category"`
	Genre        string `json:"genre"`
	Subgenre     string `json:"subgenre"`
	PriceMin     string `json:"price_min"`
	PriceMax     string `json:"price_max"`
	Currency     string `json:"currency"`
	OnsaleStart  string `json:"onsale_start"`
	OnsaleEnd    string `json:"onsale_end"`
	SaleTBD      bool   `json:"sale_status"`
}

// ExtractEventDetails maps a raw Discovery API event into an EventDetail.
// It is a pure function: no I/O, no mutation of the input.
func ExtractEventDetails(event Event) EventDetail {
	detail := EventDetail{
		Name:         fallback(event.Name),
		URL:          fallback(event.URL),
		ConcertStart: NotAvailable,
		ConcertEnd:   NotAvailable,
		VenueName:    NotAvailable,
		VenueAddress: NotAvailable,
		Category:     NotAvailable,
		Genre:        NotAvailable,
		Subgenre:     NotAvailable,
		PriceMin:     NotAvailable,
		PriceMax:     NotAvailable,
		Currency:     NotAvailable,
		OnsaleStart:  NotAvailable,
		OnsaleEnd:    NotAvailable,
	}

	if schedule, ok, err := EventSchedule(event); err == nil && ok {
		detail.ConcertStart = schedule.Start.Format(time.RFC3339)
		detail.ConcertEnd = schedule.End.Format(time.RFC3339)
	}

	if event.Embedded != nil && len(event.Embedded.Venues) > 0 {
		venue := event.Embedded.Venues[0]
		detail.VenueName = fallback(venue.Name)
		detail.VenueAddress = fallback(venueAddress(venue))
	}

	// Only the first classification entry counts; the API may return
	// several but the rest are ignored.
	if len(event.Classifications) > 0 {
		c := event.Classifications[0]
		detail.Category = namedOr(c.Segment)
		detail.Genre = namedOr(c.Genre)
		detail.Subgenre = namedOr(c.SubGenre)
	}

	if len(event.PriceRanges) > 0 {
		pr := event.PriceRanges[0]
		detail.PriceMin = priceOr(pr.Min)
		detail.PriceMax = priceOr(pr.Max)
		// Currency defaults to USD only when a price range exists at
		// all; without one it stays at the sentinel.
		if pr.Currency != "" {
			detail.Currency = pr.Currency
		} else {
			detail.Currency = "USD"
		}
	}

	if event.Sales != nil && event.Sales.Public != nil {
		detail.OnsaleStart = fallback(event.Sales.Public.StartDateTime)
		detail.OnsaleEnd = fallback(event.Sales.Public.EndDateTime)
		detail.SaleTBD = event.Sales.Public.StartTBD
	}

	return detail
}

// venueAddress joins the present address components with ", ", skipping
// absent ones entirely so no stray separators appear.
func venueAddress(venue Venue) string {
	var parts []string
	if venue.Address != nil && venue.Address.Line1 != "" {
		parts = append(parts, venue.Address.Line1)
	}
	if venue.City != nil && venue.City.Name != "" {
		parts = append(parts, venue.City.Name)
	}
	if venue.State != nil && venue.State.StateCode != "" {
		parts = append(parts, venue.State.StateCode)
	}
	if venue.PostalCode != "" {
		parts = append(parts, venue.PostalCode)
	}
	if venue.Country != nil && venue.Country.CountryCode != "" {
		parts = append(parts, venue.Country.CountryCode)
	}
	return strings.Join(parts, ", ")
}

func fallback(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func namedOr(n *Named) string {
	if n == nil || n.Name == "" {
		return NotAvailable
	}
	return n.Name
}

func priceOr(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
