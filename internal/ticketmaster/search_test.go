package ticketmaster

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/eventscout/eventscout/internal/logging"
)

func quietLogger() logging.Logger {
	return logging.NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const stubEventsPayload = `{
	"_embedded": {
		"events": [
			{
				"id": "ev1",
				"name": "Inside Both",
				"url": "https://tm.example/ev1",
				"dates": {"start": {"localDate": "2026-03-14", "localTime": "19:00:00"}}
			},
			{
				"id": "ev2",
				"name": "Between Ranges",
				"url": "https://tm.example/ev2",
				"dates": {"start": {"localDate": "2026-03-17", "localTime": "19:00:00"}}
			},
			{
				"id": "ev3",
				"name": "Second Range",
				"url": "https://tm.example/ev3",
				"dates": {"start": {"localDate": "2026-03-21", "localTime": "18:30:00"}}
			}
		]
	},
	"page": {"size": 30, "totalElements": 3, "totalPages": 1, "number": 0}
}`

func TestSearchConcerts_FiltersAgainstOriginalRanges(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, stubEventsPayload)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	ranges := []TimeRange{
		mustRange(t, "2026-03-14T18:00:00Z", "2026-03-14T23:00:00Z"),
		mustRange(t, "2026-03-21T18:00:00Z", "2026-03-21T23:00:00Z"),
	}
	details := client.SearchConcerts(context.Background(), ConcertQuery{
		City:      "Toronto",
		StateCode: "ON",
		Ranges:    ranges,
	})

	// ev2 sits inside the covering window but in the gap between the two
	// ranges, so it must be filtered out locally.
	if len(details) != 2 {
		t.Fatalf("got %d results, expected 2", len(details))
	}
	if details[0].Name != "Inside Both" || details[1].Name != "Second Range" {
		t.Errorf("results = %q, %q; vendor order not preserved", details[0].Name, details[1].Name)
	}

	// The single upstream query spans the covering window of both ranges.
	if got := gotQuery.Get("startDateTime"); got != "2026-03-14T18:00:00Z" {
		t.Errorf("startDateTime = %q", got)
	}
	if got := gotQuery.Get("endDateTime"); got != "2026-03-21T23:00:00Z" {
		t.Errorf("endDateTime = %q", got)
	}
	if got := gotQuery.Get("classificationName"); got != "Music" {
		t.Errorf("classificationName = %q", got)
	}
	if got := gotQuery.Get("sort"); got != "relevance,desc" {
		t.Errorf("sort = %q", got)
	}
	if got := gotQuery.Get("size"); got != "30" {
		t.Errorf("size = %q", got)
	}
	if got := gotQuery.Get("city"); got != "Toronto" {
		t.Errorf("city = %q", got)
	}
}

func TestSearchConcerts_EmptyRangesSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, stubEventsPayload)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	details := client.SearchConcerts(context.Background(), ConcertQuery{City: "Toronto", StateCode: "ON"})
	if details == nil || len(details) != 0 {
		t.Errorf("got %v, expected empty non-nil slice", details)
	}
	if calls.Load() != 0 {
		t.Errorf("upstream called %d times, expected 0", calls.Load())
	}
}

func TestSearchConcerts_DegradesOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"fault": "over quota"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	ranges := []TimeRange{mustRange(t, "2026-03-14T18:00:00Z", "2026-03-14T23:00:00Z")}
	details := client.SearchConcerts(context.Background(), ConcertQuery{
		City:      "Toronto",
		StateCode: "ON",
		Ranges:    ranges,
	})
	if details == nil || len(details) != 0 {
		t.Errorf("got %v, expected empty non-nil slice on upstream failure", details)
	}
}

func TestSearchConcerts_MissingAPIKeyDegrades(t *testing.T) {
	client := NewClient("", WithLogger(quietLogger()))

	ranges := []TimeRange{mustRange(t, "2026-03-14T18:00:00Z", "2026-03-14T23:00:00Z")}
	details := client.SearchConcerts(context.Background(), ConcertQuery{City: "Toronto", Ranges: ranges})
	if len(details) != 0 {
		t.Errorf("got %d results, expected 0 without an API key", len(details))
	}
}

func TestSearchEvents(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"_embedded": {"events": [{
				"id": "ev1",
				"name": "Blue Jays vs Yankees",
				"url": "https://tm.example/ev1",
				"dates": {"start": {"localDate": "2026-07-01", "localTime": "19:07:00"}},
				"classifications": [{"segment": {"name": "Sports"}, "genre": {"name": "Baseball"}}],
				"priceRanges": [{"min": 20, "max": 300}],
				"status": {"code": "onsale"},
				"_embedded": {"venues": [{
					"name": "Rogers Centre",
					"city": {"name": "Toronto"},
					"state": {"stateCode": "ON"},
					"country": {"countryCode": "CA"},
					"address": {"line1": "1 Blue Jays Way"}
				}]}
			}]},
			"page": {"size": 10, "totalElements": 42, "totalPages": 5, "number": 0}
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	result, err := client.SearchEvents(context.Background(), SearchQuery{
		Keyword:   "blue jays",
		City:      "Toronto",
		Category:  "Sports",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-07",
	})
	if err != nil {
		t.Fatalf("SearchEvents() error = %v", err)
	}

	if result.TotalReturned != 1 || result.TotalAvailable != 42 {
		t.Errorf("totals = %d/%d, expected 1/42", result.TotalReturned, result.TotalAvailable)
	}

	hit := result.Events[0]
	if hit.Name != "Blue Jays vs Yankees" || hit.Date != "2026-07-01" || hit.Time != "19:07:00" {
		t.Errorf("hit = %+v", hit)
	}
	if hit.Category != "Sports" || hit.Genre != "Baseball" || hit.Status != "onsale" {
		t.Errorf("classification = %q/%q status %q", hit.Category, hit.Genre, hit.Status)
	}
	if hit.Price == nil || hit.Price.Currency != "USD" {
		t.Errorf("price = %+v, expected USD default", hit.Price)
	}
	if hit.Venue == nil || hit.Venue.Name != "Rogers Centre" || hit.Venue.State != "ON" {
		t.Errorf("venue = %+v", hit.Venue)
	}

	if got := gotQuery.Get("size"); got != "10" {
		t.Errorf("default size = %q, expected 10", got)
	}
	if got := gotQuery.Get("countryCode"); got != "US" {
		t.Errorf("default countryCode = %q, expected US", got)
	}
	if got := gotQuery.Get("startDateTime"); got != "2026-07-01T00:00:00Z" {
		t.Errorf("startDateTime = %q", got)
	}
	if got := gotQuery.Get("endDateTime"); got != "2026-07-07T23:59:59Z" {
		t.Errorf("endDateTime = %q", got)
	}
}

func TestSearchEvents_SizeClamped(t *testing.T) {
	var gotSize string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSize = r.URL.Query().Get("size")
		io.WriteString(w, `{"page": {"totalElements": 0}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	if _, err := client.SearchEvents(context.Background(), SearchQuery{Size: 5000}); err != nil {
		t.Fatalf("SearchEvents() error = %v", err)
	}
	if gotSize != "200" {
		t.Errorf("size = %q, expected clamp to 200", gotSize)
	}
}

func TestSearchEvents_ErrorsPropagate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"fault": "bad key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL), WithLogger(quietLogger()))

	_, err := client.SearchEvents(context.Background(), SearchQuery{Keyword: "anything"})
	if err == nil {
		t.Fatal("SearchEvents() expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, expected *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", apiErr.StatusCode)
	}
}

func TestSearchEvents_MissingAPIKey(t *testing.T) {
	client := NewClient("", WithLogger(quietLogger()))

	_, err := client.SearchEvents(context.Background(), SearchQuery{Keyword: "anything"})
	if err != ErrMissingAPIKey {
		t.Errorf("error = %v, expected ErrMissingAPIKey", err)
	}
}

func TestSearchConcerts_DegradeIsLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := logging.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))
	client := NewClient("test-key", WithBaseURL(server.URL), WithLogger(logger))

	ranges := []TimeRange{mustRange(t, "2026-03-14T18:00:00Z", "2026-03-14T23:00:00Z")}
	details := client.SearchConcerts(context.Background(), ConcertQuery{City: "Toronto", StateCode: "ON", Ranges: ranges})
	if len(details) != 0 {
		t.Fatalf("details = %v, expected empty", details)
	}

	out := buf.String()
	for _, want := range []string{"concert search failed", "operation=searchConcerts", "error="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
