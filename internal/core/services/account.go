package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// AccountService manages the authenticated identity.
type AccountService struct {
	backend driven.Backend
	session driven.SessionStore
}

// NewAccountService creates a new account service.
func NewAccountService(backend driven.Backend, session driven.SessionStore) *AccountService {
	return &AccountService{backend: backend, session: session}
}

// Register creates an account and immediately logs it in. The register
// endpoint returns only a token, so the follow-up login supplies the
// full session payload.
func (s *AccountService) Register(ctx context.Context, email, password, fullName string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}

	if err := s.backend.Register(ctx, email, password, fullName); err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}
	logger.Info("account: registered %s", email)

	return s.Login(ctx, email, password)
}

// Login authenticates and stores the session.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}

	sess, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	// The backend may omit fields (register responses have no full
	// name); whatever arrives is stored wholesale.
	s.session.Login(sess)
	return s.session.Current(), nil
}

// Logout tears the session down.
func (s *AccountService) Logout() {
	s.session.Logout()
}

// Current returns the stored session.
func (s *AccountService) Current() domain.Session {
	return s.session.Current()
}

// IsAuthenticated reports whether a session is held.
func (s *AccountService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}
