package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohithgowthamg4927/clickweb/internal/client"
	"github.com/rohithgowthamg4927/clickweb/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() event.ClickEvent {
	return event.ClickEvent{
		ID:        "id-1",
		Button:    "GitHub",
		Timestamp: "2026-09-01T17:30:00",
		PageURL:   "https://github.com",
		Device: event.DeviceInfo{
			DeviceType: event.Desktop,
			Platform:   "Linux x86_64",
			Browser:    "Mozilla/5.0 (X11; Linux x86_64)",
		},
		Location: event.UnknownLocation(),
	}
}

func TestLogClick(t *testing.T) {
	t.Run("returns the acknowledgement message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/clicks", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "id-1", body["id"])
			assert.Contains(t, body, "device")
			assert.Contains(t, body, "location")

			_, _ = w.Write([]byte(`{"message": "Click logged successfully"}`))
		}))
		defer srv.Close()

		ack, err := client.New(srv.URL).LogClick(context.Background(), sampleEvent())

		require.NoError(t, err)
		assert.Equal(t, "Click logged successfully", ack)
	})

	t.Run("maps 400 to a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "missing required fields"}`))
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).LogClick(context.Background(), sampleEvent())

		assert.ErrorIs(t, err, client.ErrRejected)
	})

	t.Run("maps 500 to a server failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := client.New(srv.URL).LogClick(context.Background(), sampleEvent())

		require.Error(t, err)
		assert.NotErrorIs(t, err, client.ErrRejected)
	})

	t.Run("returns the transport error when unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close()

		_, err := client.New(srv.URL).LogClick(context.Background(), sampleEvent())

		assert.Error(t, err)
	})
}
