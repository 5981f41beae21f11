package testutil

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory repository.KVStore
type MemoryKV struct {
	mu   sync.Mutex
	data map[int64]map[string][]byte
}

// NewMemoryKV creates an empty store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[int64]map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, userID int64, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[userID][key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryKV) Set(_ context.Context, userID int64, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope, ok := m.data[userID]
	if !ok {
		scope = make(map[string][]byte)
		m.data[userID] = scope
	}
	scope[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, userID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[userID], key)
	return nil
}

// Raw returns the stored bytes for assertions
func (m *MemoryKV) Raw(userID int64, key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data[userID][key])
}
