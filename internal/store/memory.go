package store

import "context"

// Memory is an in-process KV. Not safe for concurrent use.
type Memory struct {
	data map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored at key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set writes value at key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
