package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the click ingestion routes.
func RegisterRoutes(api huma.API, clickHandler *ClickHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/clicks",
		Summary:     "Log a click event",
		Description: "Validates a submitted click event and persists it as one item keyed by its id. Re-submitting an id overwrites the prior record.",
		Tags:        []string{"Clicks"},
	}, clickHandler.LogClick)
}
