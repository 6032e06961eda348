package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("click not found")

// ClickItem is the flat storage shape of a click event: nested device and
// location fields are flattened into top-level attributes keyed by the
// event id.
type ClickItem struct {
	ID         string
	Button     string
	Timestamp  string
	PageURL    string
	DeviceType string
	Platform   string
	Browser    string
	City       string
	Country    string
}

// ClickStore defines the persistence operations the ingestion endpoint
// depends on. Put is an unconditional insert-or-overwrite by id; concurrent
// puts sharing an id race with last-write-wins semantics.
type ClickStore interface {
	Put(ctx context.Context, item ClickItem) error
	Get(ctx context.Context, id string) (ClickItem, error)
}
