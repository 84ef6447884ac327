// Package kv provides the persistent key-value slot the ledger syncs with.
// It mirrors the single-key blob storage of the original browser build: one
// key, one JSON value, full overwrite on every write.
package kv

import (
	"context"
	"sync"
)

// Slot is a single shared key-value resource with last-writer-wins
// semantics. There is no isolation and no optimistic concurrency check.
type Slot interface {
	// Get returns the stored value, or nil if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value for key in full.
	Put(ctx context.Context, key string, value []byte) error
}

// Memory is an in-process slot used as the default dev backend and in tests.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}
