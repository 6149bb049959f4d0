package storage

import (
	"encoding/json"
	"sync"
)

// Memory is an in-process Store, primarily for tests.
type Memory struct {
	mu    sync.Mutex
	blobs map[string]json.RawMessage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]json.RawMessage)}
}

func (m *Memory) Load(key string, out any) bool {
	m.mu.Lock()
	raw, ok := m.blobs[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *Memory) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blobs[key] = raw
	m.mu.Unlock()
	return nil
}
