// Package kv provides the key-value store backing the storefront. All
// persisted state (products, inventory, site content, settings, cart) lives
// behind this interface so the two-list sync invariant is enforced in one
// place and tests can run against an in-memory store.
package kv

import (
	"context"
	"sync"
)

// Store is a minimal key-value contract. Values are opaque bytes; callers
// serialize to JSON.
type Store interface {
	// Get returns the value for key. The second return reports whether the
	// key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value for key, overwriting any existing value.
	// Last write wins; there is no versioning.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Memory is a Store backed by a map, used in tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
