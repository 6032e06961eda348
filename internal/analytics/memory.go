package analytics

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store, used in tests and
// when no archive database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]ClickLoggedEvent
}

// NewMemoryStore creates a new in-memory archive store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string]ClickLoggedEvent),
	}
}

func (m *MemoryStore) SaveClickLogged(_ context.Context, event *ClickLoggedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[event.ID] = *event

	return nil
}

// Get returns the archived event for an id, if present.
func (m *MemoryStore) Get(id string) (ClickLoggedEvent, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, ok := m.events[id]

	return event, ok
}

// Len reports the number of archived events.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.events)
}

// Compile-time check.
var _ Store = (*MemoryStore)(nil)
