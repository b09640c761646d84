package ticketmaster

// Response and entity shapes for the Ticketmaster Discovery API.
// Only the fields this server reads are modeled; everything else in the
// payload is ignored by the JSON decoder. Optional nested objects are
// pointers so that absence stays distinguishable from zero values.

// eventsResponse is the top-level payload of GET /events.
type eventsResponse struct {
	Embedded *embeddedEvents `json:"_embedded,omitempty"`
	Page     Page            `json:"page"`
}

type embeddedEvents struct {
	Events []Event `json:"events"`
}

// Page describes the pagination envelope of a Discovery API response.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Event is a single Discovery API event.
type Event struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Dates           *EventDates      `json:"dates,omitempty"`
	Classifications []Classification `json:"classifications,omitempty"`
	PriceRanges     []PriceRange     `json:"priceRanges,omitempty"`
	Sales           *Sales           `json:"sales,omitempty"`
	Status          *EventStatus     `json:"status,omitempty"`
	Embedded        *EmbeddedVenues  `json:"_embedded,omitempty"`
}

// EventDates holds the vendor's nested date shape. Start and End each carry
// a local date and an optional local time; the API never labels these with
// an offset.
type EventDates struct {
	Start *DateInfo `json:"start,omitempty"`
	End   *DateInfo `json:"end,omitempty"`
}

// DateInfo is one endpoint of an event's schedule.
type DateInfo struct {
	LocalDate string `json:"localDate,omitempty"`
	LocalTime string `json:"localTime,omitempty"`
	DateTime  string `json:"dateTime,omitempty"`
}

// Classification carries segment/genre/subgenre names for an event.
type Classification struct {
	Segment  *Named `json:"segment,omitempty"`
	Genre    *Named `json:"genre,omitempty"`
	SubGenre *Named `json:"subGenre,omitempty"`
}

// Named is the API's ubiquitous {id, name} object, reduced to the name.
type Named struct {
	Name string `json:"name,omitempty"`
}

// PriceRange is one entry of an event's priceRanges list. Min and Max are
// pointers because the API omits them independently of each other.
type PriceRange struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Sales groups the ticket sale windows of an event.
type Sales struct {
	Public *PublicSale `json:"public,omitempty"`
}

// PublicSale is the public on-sale window.
type PublicSale struct {
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	StartTBD      bool   `json:"startTBD,omitempty"`
}

// EventStatus wraps the event status code ("onsale", "offsale", ...).
type EventStatus struct {
	Code string `json:"code,omitempty"`
}

// EmbeddedVenues holds the venues embedded into an event response.
type EmbeddedVenues struct {
	Venues []Venue `json:"venues"`
}

// Venue is a Discovery API venue with its nested address parts.
type Venue struct {
	Name       string        `json:"name,omitempty"`
	PostalCode string        `json:"postalCode,omitempty"`
	Address    *VenueAddress `json:"address,omitempty"`
	City       *Named        `json:"city,omitempty"`
	State      *VenueState   `json:"state,omitempty"`
	Country    *VenueCountry `json:"country,omitempty"`
}

// VenueAddress is the street-level part of a venue address.
type VenueAddress struct {
	Line1 string `json:"line1,omitempty"`
}

// VenueState carries the two-letter state code of a venue.
type VenueState struct {
	StateCode string `json:"stateCode,omitempty"`
}

// VenueCountry carries the country code of a venue.
type VenueCountry struct {
	CountryCode string `json:"countryCode,omitempty"`
}
