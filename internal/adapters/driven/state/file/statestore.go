// Package file provides a file-backed implementation of driven.StateStore.
// Each named record is one JSON file under the state directory, written
// synchronously so a mutation survives an immediate process restart.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore persists named JSON records as files.
type StateStore struct {
	mu  sync.Mutex
	dir string
}

// NewStateStore creates a state store rooted at dir. If dir is empty,
// defaults to ~/.tutorwise/state.
func NewStateStore(dir string) (*StateStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".tutorwise", "state")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &StateStore{dir: dir}, nil
}

// Load reads the named record into v. Returns false without error when
// the record does not exist yet.
func (s *StateStore) Load(name string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode state %q: %w", name, err)
	}
	return true, nil
}

// Save marshals v and replaces the named record on disk.
func (s *StateStore) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", name, err)
	}

	// Restricted permissions: the session record holds a bearer token.
	return os.WriteFile(s.path(name), data, 0600)
}

// Delete removes the named record. Missing records are ignored.
func (s *StateStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the state directory.
func (s *StateStore) Dir() string {
	return s.dir
}

// path maps a record name onto a file path. Names are caller-controlled
// constants, but path separators are stripped anyway.
func (s *StateStore) path(name string) string {
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}
