package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eventscout/eventscout/internal/logging"
)

const (
	// DefaultBaseURL is the Discovery API v2 base path.
	DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

	// requestTimeout bounds every Discovery API call.
	requestTimeout = 10 * time.Second

	// MaxPageSize is the API's hard cap on the size parameter.
	MaxPageSize = 200

	// ConcertPageSize caps the page size for concert range searches.
	ConcertPageSize = 30
)

// ErrMissingAPIKey indicates the client was constructed without an API key.
// It is a configuration problem to report to the user, not a crash.
var ErrMissingAPIKey = errors.New("ticketmaster API key not set (set TICKETMASTER_API_KEY)")

// APIError describes a failed Discovery API call.
type APIError struct {
	Op         string // the operation being performed, e.g. "searchEvents"
	StatusCode int    // HTTP status, 0 for transport-level failures
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ticketmaster: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ticketmaster: %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client provides access to the Ticketmaster Discovery API.
// It is safe for concurrent use; it holds no per-request state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a stub server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for degraded-search reporting.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Discovery API client. The API key may be empty;
// calls will then fail with ErrMissingAPIKey so that the missing
// configuration surfaces as a user-facing error instead of a startup crash.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasAPIKey reports whether the client carries an API key.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// getEvents issues a single GET /events call with the given query
// parameters and decodes the response envelope. No retries, no pagination:
// exactly one page comes back.
func (c *Client) getEvents(ctx context.Context, op string, params url.Values) (*eventsResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params.Set("apikey", c.apiKey)

	reqURL := c.baseURL + "/events?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a little of the body for a useful error message; the
		// Discovery API returns a JSON fault document on errors.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", string(body)),
		}
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &APIError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &payload, nil
}
