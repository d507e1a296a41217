package driven

import "github.com/tutorwise/tutorwise-cli/internal/core/domain"

// TranscriptStore keeps the per-space chat history, persisted as one
// record keyed by space ID. Transcripts are created lazily and only ever
// change through these operations.
type TranscriptStore interface {
	// History returns a copy of the space's messages in append order,
	// or an empty slice when the space has no transcript. Never fails.
	History(spaceID string) []domain.ChatMessage

	// Append adds one message to the end of the space's transcript,
	// creating it if absent, and persists.
	Append(spaceID string, msg domain.ChatMessage) error

	// ReplaceLast swaps the final message for msg and persists. An
	// explicit no-op when the transcript is empty or absent.
	ReplaceLast(spaceID string, msg domain.ChatMessage) error

	// Clear replaces the space's transcript with an empty one and
	// persists.
	Clear(spaceID string) error
}
