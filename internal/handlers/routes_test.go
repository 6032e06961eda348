package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/rohithgowthamg4927/clickweb/internal/handlers"
	"github.com/rohithgowthamg4927/clickweb/internal/health"
	"github.com/rohithgowthamg4927/clickweb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAPI(t *testing.T) (*chi.Mux, *store.MemoryStore) {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Click Tracker", "1.0.0"))

	memStore := store.NewMemoryStore()
	handler := handlers.NewClickHandler(memStore, noopPublish[analytics.ClickLoggedEvent](), zap.NewNop())
	handlers.RegisterRoutes(api, handler)
	health.RegisterRoutes(api, health.NewHandler())

	return router, memStore
}

const validClickJSON = `{
	"id": "8e4b8a6e-0f5c-4a3d-9d6b-0c5bb9f6f001",
	"button": "GitHub",
	"timestamp": "2026-09-01T17:30:00",
	"pageUrl": "https://github.com",
	"device": {"deviceType": "Mobile", "platform": "iPhone", "browser": "Mozilla/5.0 (iPhone)"},
	"location": {"city": "Bengaluru", "country": "India"}
}`

func TestClicksEndpoint(t *testing.T) {
	t.Run("accepts a complete submission", func(t *testing.T) {
		router, memStore := setupAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/clicks", strings.NewReader(validClickJSON))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Click logged successfully")

		item, err := memStore.Get(context.Background(), "8e4b8a6e-0f5c-4a3d-9d6b-0c5bb9f6f001")
		require.NoError(t, err)
		assert.Equal(t, "GitHub", item.Button)
	})

	t.Run("rejects a submission without an id", func(t *testing.T) {
		router, memStore := setupAPI(t)

		body := `{
			"button": "GitHub",
			"timestamp": "2026-09-01T17:30:00",
			"pageUrl": "https://github.com",
			"device": {"deviceType": "Mobile", "platform": "iPhone", "browser": "x"},
			"location": {"city": "Bengaluru", "country": "India"}
		}`

		req := httptest.NewRequest(http.MethodPost, "/clicks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "id")
		assert.Equal(t, 0, memStore.Len())
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "timestamp")
}
