package driven

import (
	"context"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// Backend is the TutorWise HTTP API. Every method is a thin binding onto
// one endpoint; errors surface as *domain.APIError, unchanged, with no
// local recovery. A 401 on any call has already torn the session down by
// the time the caller sees the error.
type Backend interface {
	// Register creates an account. The backend returns only a token, so
	// callers wanting a full session follow up with Login.
	Register(ctx context.Context, email, password, fullName string) error

	// Login exchanges credentials for a session payload.
	Login(ctx context.Context, email, password string) (domain.Session, error)

	// CreateSpace creates a learning space.
	CreateSpace(ctx context.Context, req domain.SpaceCreate) (domain.Space, error)

	// ListSpaces returns the owner's spaces, newest first.
	ListSpaces(ctx context.Context, ownerID string) ([]domain.Space, error)

	// GetSpace fetches one space.
	GetSpace(ctx context.Context, id string) (domain.Space, error)

	// UpdateSpace applies a partial update.
	UpdateSpace(ctx context.Context, id string, req domain.SpaceUpdate) (domain.Space, error)

	// DeleteSpace removes a space.
	DeleteSpace(ctx context.Context, id string) error

	// UploadContent uploads one document. Metadata (space, title, owner)
	// travels as query parameters; only the file is multipart.
	UploadContent(ctx context.Context, req domain.UploadRequest) (domain.Content, error)

	// ListContents returns a space's documents, newest first.
	ListContents(ctx context.Context, spaceID string) ([]domain.Content, error)

	// SendMessage runs one chat turn against a space.
	SendMessage(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
}
