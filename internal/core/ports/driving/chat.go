package driving

import (
	"context"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// ChatService runs chat turns against a space and keeps the transcript.
type ChatService interface {
	// Send appends the user turn, sends it with prior history, appends
	// and returns the assistant turn. On failure the user turn stays in
	// the transcript and the error propagates to the caller.
	Send(ctx context.Context, spaceID, text string) (domain.ChatMessage, error)

	// History returns the space's transcript in append order.
	History(spaceID string) []domain.ChatMessage

	// ClearHistory empties the space's transcript.
	ClearHistory(spaceID string) error
}

// WatchService uploads files appearing in a local directory to a space.
type WatchService interface {
	// Run watches dir until ctx is cancelled, uploading new file
	// revisions with allowed extensions. Blocking.
	Run(ctx context.Context, dir, spaceID string) error
}
