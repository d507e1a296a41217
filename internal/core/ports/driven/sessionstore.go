package driven

import "github.com/tutorwise/tutorwise-cli/internal/core/domain"

// SessionStore is the single source of truth for "who is logged in".
// Implementations persist every mutation before returning, and mutate
// only through Login and Logout: there is no partial-field update.
type SessionStore interface {
	// Login overwrites the whole session and marks it authenticated.
	// Any non-empty token is accepted; no format validation happens here.
	Login(s domain.Session)

	// Logout clears every field in one atomic update, persists the
	// cleared state, and then runs the registered reset hook. The hook
	// is the application-wide teardown (drop caches, return to the
	// unauthenticated entry state); it replaces the original's full
	// page reload.
	Logout()

	// AuthHeader returns an empty map when logged out, otherwise a
	// single bearer Authorization header. Read-only.
	AuthHeader() map[string]string

	// IsAuthenticated reports whether a token is held. Always equal to
	// Current().Token != "".
	IsAuthenticated() bool

	// Current returns a copy of the session.
	Current() domain.Session
}
