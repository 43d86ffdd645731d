package store

import (
	"sort"
	"sync"

	"nickandperla.net/arith/internal/eval"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu   sync.RWMutex
	data map[string]eval.Context
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]eval.Context),
	}
}

// Get retrieves a context by name. The returned context is a copy;
// mutating it does not affect the stored one.
func (m *Memory) Get(name string) (eval.Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ctx, ok := m.data[name]; ok {
		return ctx.Clone(), nil
	}
	return nil, nil
}

// Put stores a context by name.
func (m *Memory) Put(name string, ctx eval.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = ctx.Clone()
	return nil
}

// Delete removes a context by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
	return nil
}

// List returns all stored context names, sorted.
func (m *Memory) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
