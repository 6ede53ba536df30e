package kvstore

import (
	"errors"
	"sync"
)

// ErrWriteFailed is returned by Memory when writes are forced to fail.
var ErrWriteFailed = errors.New("kvstore: write failed")

// Memory is an in-memory Store backend. It is the default backend for
// single-instance deployments and the fake used by engine tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every Write return ErrWriteFailed. Tests use it to
	// simulate quota-exceeded storage.
	FailWrites bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

func (m *Memory) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrWriteFailed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Erase(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
}
