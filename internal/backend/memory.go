package backend

import (
	"context"
	"sync"
)

// MemoryBlob is a process-local Blob, the default for development and the
// test double everywhere else.
type MemoryBlob struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{data: make(map[string]string)}
}

func (m *MemoryBlob) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBlob) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
