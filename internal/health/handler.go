package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Handler handles health check operations. The endpoint is a liveness
// signal only: it reports the current server time and does not probe
// storage connectivity.
type Handler struct {
	now func() time.Time
}

// NewHandler creates a new health handler.
func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// NewHandlerWithClock creates a health handler with an injected clock.
func NewHandlerWithClock(now func() time.Time) *Handler {
	return &Handler{now: now}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
}

// Check reports the process as healthy with the current server time.
func (h *Handler) Check(_ context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Timestamp = h.now().Format(time.RFC3339)

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
