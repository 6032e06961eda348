package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/rohithgowthamg4927/clickweb/internal/handlers"
	"github.com/rohithgowthamg4927/clickweb/internal/messaging"
	"github.com/rohithgowthamg4927/clickweb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

// failingStore rejects every put.
type failingStore struct{}

func (failingStore) Put(context.Context, store.ClickItem) error {
	return errors.New("storage unavailable")
}

func (failingStore) Get(context.Context, string) (store.ClickItem, error) {
	return store.ClickItem{}, store.ErrNotFound
}

func newTestHandler(s store.ClickStore) *handlers.ClickHandler {
	return handlers.NewClickHandler(s, noopPublish[analytics.ClickLoggedEvent](), zap.NewNop())
}

func validSubmission() handlers.ClickSubmission {
	return handlers.ClickSubmission{
		ID:        "8e4b8a6e-0f5c-4a3d-9d6b-0c5bb9f6f001",
		Button:    "GitHub",
		Timestamp: "2026-09-01T17:30:00",
		PageURL:   "https://github.com",
		Device: &handlers.DeviceSubmission{
			DeviceType: "Mobile",
			Platform:   "iPhone",
			Browser:    "Mozilla/5.0 (iPhone)",
		},
		Location: &handlers.LocationSubmission{City: "Bengaluru", Country: "India"},
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var statusErr huma.StatusError

	require.ErrorAs(t, err, &statusErr)

	return statusErr.GetStatus()
}

func TestLogClick(t *testing.T) {
	t.Run("persists a valid event and acknowledges", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		req := &handlers.LogClickRequest{Body: validSubmission()}

		resp, err := handler.LogClick(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Click logged successfully", resp.Body.Message)

		item, err := memStore.Get(context.Background(), req.Body.ID)
		require.NoError(t, err)
		assert.Equal(t, "GitHub", item.Button)
		assert.Equal(t, "https://github.com", item.PageURL)
		assert.Equal(t, "Mobile", item.DeviceType)
		assert.Equal(t, "iPhone", item.Platform)
		assert.Equal(t, "Mozilla/5.0 (iPhone)", item.Browser)
		assert.Equal(t, "Bengaluru", item.City)
		assert.Equal(t, "India", item.Country)
	})

	t.Run("rejects missing fields without persisting", func(t *testing.T) {
		mutations := map[string]func(*handlers.ClickSubmission){
			"id":        func(s *handlers.ClickSubmission) { s.ID = "" },
			"button":    func(s *handlers.ClickSubmission) { s.Button = "" },
			"timestamp": func(s *handlers.ClickSubmission) { s.Timestamp = "" },
			"pageUrl":   func(s *handlers.ClickSubmission) { s.PageURL = "" },
			"device":    func(s *handlers.ClickSubmission) { s.Device = nil },
			"location":  func(s *handlers.ClickSubmission) { s.Location = nil },
		}

		for field, mutate := range mutations {
			t.Run(field, func(t *testing.T) {
				memStore := store.NewMemoryStore()
				handler := newTestHandler(memStore)

				body := validSubmission()
				mutate(&body)
				req := &handlers.LogClickRequest{Body: body}

				resp, err := handler.LogClick(context.Background(), req)

				assert.Nil(t, resp)
				assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
				assert.Contains(t, err.Error(), field)
				assert.Equal(t, 0, memStore.Len())
			})
		}
	})

	t.Run("same id overwrites with the later submission", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore)

		first := validSubmission()
		second := validSubmission()
		second.Button = "Netflix"
		second.PageURL = "https://www.netflix.com"

		_, err1 := handler.LogClick(context.Background(), &handlers.LogClickRequest{Body: first})
		_, err2 := handler.LogClick(context.Background(), &handlers.LogClickRequest{Body: second})

		require.NoError(t, err1)
		require.NoError(t, err2)

		item, err := memStore.Get(context.Background(), first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Netflix", item.Button)
		assert.Equal(t, 1, memStore.Len())
	})

	t.Run("surfaces storage failure as a server error", func(t *testing.T) {
		handler := newTestHandler(failingStore{})

		req := &handlers.LogClickRequest{Body: validSubmission()}

		resp, err := handler.LogClick(context.Background(), req)

		assert.Nil(t, resp)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := handlers.NewClickHandler(
			memStore,
			errorPublish[analytics.ClickLoggedEvent](errors.New("stream down")),
			zap.NewNop(),
		)

		req := &handlers.LogClickRequest{Body: validSubmission()}

		resp, err := handler.LogClick(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Click logged successfully", resp.Body.Message)
		assert.Equal(t, 1, memStore.Len())
	})

	t.Run("publishes the flattened archive event", func(t *testing.T) {
		memStore := store.NewMemoryStore()

		var published *analytics.ClickLoggedEvent

		capture := func(ev *analytics.ClickLoggedEvent) error {
			published = ev

			return nil
		}
		handler := handlers.NewClickHandler(memStore, capture, zap.NewNop())

		req := &handlers.LogClickRequest{Body: validSubmission()}

		_, err := handler.LogClick(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, published)
		assert.Equal(t, req.Body.ID, published.ID)
		assert.Equal(t, "Mobile", published.DeviceType)
		assert.Equal(t, "India", published.Country)
		assert.False(t, published.LoggedAt.IsZero())
	})
}
