// Package session provides the persisted session store: the single
// source of truth for the logged-in identity and its bearer token.
package session

import (
	"sync"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// StateKey is the record name the session persists under.
const StateKey = "tutorwise-auth"

// Ensure Store implements the interface.
var _ driven.SessionStore = (*Store)(nil)

// Store holds the current session, backed by a StateStore. All mutation
// goes through Login and Logout; each persists before returning so the
// state survives an immediate restart.
type Store struct {
	mu      sync.RWMutex
	state   driven.StateStore
	current domain.Session

	// onLogout is the application reset hook, run after every Logout.
	// It stands in for the original client's full page reload: the
	// composition root registers a function that discards in-memory
	// state and returns the UI to the unauthenticated entry point.
	onLogout func()
}

// NewStore creates a session store, restoring any persisted session.
func NewStore(state driven.StateStore) (*Store, error) {
	s := &Store{state: state}

	var restored domain.Session
	ok, err := state.Load(StateKey, &restored)
	if err != nil {
		return nil, err
	}
	if ok {
		// Authenticated follows token presence regardless of what the
		// record claims; the two must never be observably out of sync.
		restored.Authenticated = restored.Token != ""
		s.current = restored
	}

	return s, nil
}

// SetResetHook registers the function run after Logout clears the session.
func (s *Store) SetResetHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// Login overwrites the whole session and persists it. Any caller-supplied
// token is accepted as-is; no format validation.
func (s *Store) Login(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Authenticated = sess.Token != ""
	s.current = sess
	s.persist()
	logger.Debug("session: logged in as %s", sess.Email)
}

// Logout clears every field in one update, persists the cleared state,
// then runs the reset hook.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = domain.Session{}
	s.persist()
	hook := s.onLogout
	s.mu.Unlock()

	logger.Debug("session: logged out")
	if hook != nil {
		hook()
	}
}

// AuthHeader returns the bearer Authorization header, or an empty map
// when logged out. Read-only.
func (s *Store) AuthHeader() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.Token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + s.current.Token}
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token != ""
}

// Current returns a copy of the session.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// persist writes the session record (caller must hold the lock). Login
// and Logout never fail to the caller; a persistence problem is logged
// and the in-memory state stays authoritative for this process.
func (s *Store) persist() {
	if err := s.state.Save(StateKey, s.current); err != nil {
		logger.Error("session: persist failed: %v", err)
	}
}
