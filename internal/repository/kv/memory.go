package kv

import "context"

// MemoryStore implements the Store interface with an in-process map.
// Used in tests and for ephemeral sessions with no durable state.
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore creates a new empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get retrieves the value for a key
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

// Set writes the value for a key
func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.data[key] = value
	return nil
}

// Delete removes a key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
