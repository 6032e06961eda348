// Package geocode provides a client for the reverse-geocoding lookup service.
// The service is treated as unreliable: every failure mode degrades to the
// Unknown sentinel instead of an error.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rohithgowthamg4927/clickweb/internal/event"
	"go.uber.org/zap"
)

// DefaultBaseURL is the canonical reverse-geocoding provider.
const DefaultBaseURL = "https://geocode.xyz"

// DefaultTimeout bounds a single lookup so a slow provider cannot hold an
// event open indefinitely.
const DefaultTimeout = 3 * time.Second

// Client resolves coordinates to a city/country pair.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a reverse-geocoding client with the default timeout.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout, logger)
}

// NewClientWithTimeout creates a reverse-geocoding client with a custom timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// response is the subset of the provider's body this client reads. Missing
// fields decode to empty strings and fall back per-field.
type response struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Reverse looks up the location for a coordinate pair. It never returns an
// error: network failures, non-2xx statuses, malformed bodies and missing
// fields all degrade to the Unknown sentinel, per field.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) event.Location {
	url := fmt.Sprintf("%s/%f,%f?geoit=json", c.baseURL, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("geocode request build failed", zap.Error(err))

		return event.UnknownLocation()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("geocode lookup failed", zap.Error(err))

		return event.UnknownLocation()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocode lookup returned non-ok status",
			zap.Int("status", resp.StatusCode),
		)

		return event.UnknownLocation()
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("geocode response malformed", zap.Error(err))

		return event.UnknownLocation()
	}

	loc := event.Location{City: body.City, Country: body.Country}
	if loc.City == "" {
		loc.City = event.Unknown
	}

	if loc.Country == "" {
		loc.Country = event.Unknown
	}

	return loc
}
