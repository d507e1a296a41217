package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService manages documents within a space.
type ContentService struct {
	backend driven.Backend
	session driven.SessionStore
}

// NewContentService creates a new content service.
func NewContentService(backend driven.Backend, session driven.SessionStore) *ContentService {
	return &ContentService{backend: backend, session: session}
}

// Upload sends one local file to a space. Title defaults to the file
// name when empty.
func (s *ContentService) Upload(ctx context.Context, spaceID, path, title string) (domain.Content, error) {
	if !s.session.IsAuthenticated() {
		return domain.Content{}, domain.ErrAuthRequired
	}
	if spaceID == "" || path == "" {
		return domain.Content{}, fmt.Errorf("space and file are required: %w", domain.ErrInvalidInput)
	}
	if title == "" {
		title = filepath.Base(path)
	}

	content, err := s.backend.UploadContent(ctx, domain.UploadRequest{
		SpaceID:  spaceID,
		OwnerID:  s.session.Current().UserID,
		Title:    title,
		FilePath: path,
	})
	if err != nil {
		return domain.Content{}, fmt.Errorf("upload content: %w", err)
	}

	logger.Info("content: uploaded %s to space %s as %s", path, spaceID, content.ID)
	return content, nil
}

// List returns a space's documents.
func (s *ContentService) List(ctx context.Context, spaceID string) ([]domain.Content, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrAuthRequired
	}

	contents, err := s.backend.ListContents(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return contents, nil
}
