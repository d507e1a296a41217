package driving

import (
	"context"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// SpaceService manages learning spaces for the logged-in user.
type SpaceService interface {
	// Create creates a space owned by the current user.
	Create(ctx context.Context, title, description string) (domain.Space, error)

	// List returns the current user's spaces.
	List(ctx context.Context) ([]domain.Space, error)

	// Get fetches one space.
	Get(ctx context.Context, id string) (domain.Space, error)

	// Update applies a partial update.
	Update(ctx context.Context, id string, update domain.SpaceUpdate) (domain.Space, error)

	// Delete removes a space.
	Delete(ctx context.Context, id string) error
}

// ContentService manages documents within a space.
type ContentService interface {
	// Upload sends one local file to a space. Title defaults to the
	// file name when empty.
	Upload(ctx context.Context, spaceID, path, title string) (domain.Content, error)

	// List returns a space's documents.
	List(ctx context.Context, spaceID string) ([]domain.Content, error)
}
