package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
)

// Ensure SpaceService implements the interface.
var _ driving.SpaceService = (*SpaceService)(nil)

// SpaceService manages learning spaces for the logged-in user.
type SpaceService struct {
	backend driven.Backend
	session driven.SessionStore
}

// NewSpaceService creates a new space service.
func NewSpaceService(backend driven.Backend, session driven.SessionStore) *SpaceService {
	return &SpaceService{backend: backend, session: session}
}

// Create creates a space owned by the current user.
func (s *SpaceService) Create(ctx context.Context, title, description string) (domain.Space, error) {
	if !s.session.IsAuthenticated() {
		return domain.Space{}, domain.ErrAuthRequired
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Space{}, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}

	space, err := s.backend.CreateSpace(ctx, domain.SpaceCreate{
		Title:       title,
		Description: description,
		OwnerID:     s.session.Current().UserID,
	})
	if err != nil {
		return domain.Space{}, fmt.Errorf("create space: %w", err)
	}
	return space, nil
}

// List returns the current user's spaces.
func (s *SpaceService) List(ctx context.Context) ([]domain.Space, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrAuthRequired
	}

	spaces, err := s.backend.ListSpaces(ctx, s.session.Current().UserID)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	return spaces, nil
}

// Get fetches one space.
func (s *SpaceService) Get(ctx context.Context, id string) (domain.Space, error) {
	if !s.session.IsAuthenticated() {
		return domain.Space{}, domain.ErrAuthRequired
	}

	space, err := s.backend.GetSpace(ctx, id)
	if err != nil {
		return domain.Space{}, fmt.Errorf("get space: %w", err)
	}
	return space, nil
}

// Update applies a partial update.
func (s *SpaceService) Update(ctx context.Context, id string, update domain.SpaceUpdate) (domain.Space, error) {
	if !s.session.IsAuthenticated() {
		return domain.Space{}, domain.ErrAuthRequired
	}

	space, err := s.backend.UpdateSpace(ctx, id, update)
	if err != nil {
		return domain.Space{}, fmt.Errorf("update space: %w", err)
	}
	return space, nil
}

// Delete removes a space.
func (s *SpaceService) Delete(ctx context.Context, id string) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrAuthRequired
	}

	if err := s.backend.DeleteSpace(ctx, id); err != nil {
		return fmt.Errorf("delete space: %w", err)
	}
	return nil
}
