package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of ClickStore.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]ClickItem
}

// NewMemoryStore creates a new in-memory click store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]ClickItem),
	}
}

func (m *MemoryStore) Put(_ context.Context, item ClickItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[item.ID] = item

	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (ClickItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return ClickItem{}, ErrNotFound
	}

	return item, nil
}

// Len reports the number of stored items.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Compile-time check.
var _ ClickStore = (*MemoryStore)(nil)
