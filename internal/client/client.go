// Package client provides the ingestion API client used by the agent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rohithgowthamg4927/clickweb/internal/event"
)

// ErrRejected marks a submission the server refused (validation failure).
// Retrying the same payload will not succeed.
var ErrRejected = errors.New("submission rejected")

// DefaultTimeout bounds a single submission round trip.
const DefaultTimeout = 10 * time.Second

// Client submits click events to the ingestion endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an ingestion client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

type ackBody struct {
	Message string `json:"message"`
}

// LogClick submits one event, returning the server's acknowledgement
// message. 4xx responses map to ErrRejected; anything else non-2xx is a
// server-side failure.
func (c *Client) LogClick(ctx context.Context, ev event.ClickEvent) (string, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/clicks", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var ack ackBody
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			// Persisted but unreadable ack: still a success.
			return "", nil
		}

		return ack.Message, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		return "", fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
