package driving

import (
	"context"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// AccountService manages the authenticated identity.
type AccountService interface {
	// Register creates an account and immediately logs it in, returning
	// the resulting session.
	Register(ctx context.Context, email, password, fullName string) (domain.Session, error)

	// Login authenticates and stores the session.
	Login(ctx context.Context, email, password string) (domain.Session, error)

	// Logout tears the session down (persisted clear plus application
	// reset hook).
	Logout()

	// Current returns the stored session.
	Current() domain.Session

	// IsAuthenticated reports whether a session is held.
	IsAuthenticated() bool
}
