// Package memory provides an in-memory implementation of driven.StateStore
// for tests and ephemeral sessions.
package memory

import (
	"encoding/json"
	"sync"

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore keeps named records as marshalled JSON in a map. Records
// round-trip through JSON so behaviour matches the file store.
type StateStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{records: make(map[string][]byte)}
}

// Load reads the named record into v.
func (s *StateStore) Load(name string, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Save marshals v and replaces the named record.
func (s *StateStore) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = data
	return nil
}

// Delete removes the named record.
func (s *StateStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, name)
	return nil
}
