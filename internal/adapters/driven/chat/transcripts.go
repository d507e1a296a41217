// Package chat provides the persisted per-space transcript store.
package chat

import (
	"sync"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// StateKey is the record name the transcripts persist under. All spaces
// share one record: a map of space ID to message slice.
const StateKey = "tutorwise-chat-sessions"

// Ensure TranscriptStore implements the interface.
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore keeps ordered per-space chat history, persisted on
// every mutation. Its lifecycle is independent of the session store:
// logging out does not clear transcripts.
type TranscriptStore struct {
	mu       sync.RWMutex
	state    driven.StateStore
	sessions map[string][]domain.ChatMessage
}

// NewTranscriptStore creates a transcript store, restoring any persisted
// transcripts.
func NewTranscriptStore(state driven.StateStore) (*TranscriptStore, error) {
	s := &TranscriptStore{
		state:    state,
		sessions: make(map[string][]domain.ChatMessage),
	}

	var restored map[string][]domain.ChatMessage
	ok, err := state.Load(StateKey, &restored)
	if err != nil {
		return nil, err
	}
	if ok && restored != nil {
		s.sessions = restored
	}

	return s, nil
}

// History returns a copy of the space's messages in append order, or an
// empty slice when the space has no transcript yet. Never fails.
func (s *TranscriptStore) History(spaceID string) []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[spaceID]
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// Append adds one message to the space's transcript, creating it if
// absent, and persists.
func (s *TranscriptStore) Append(spaceID string, msg domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[spaceID] = append(s.sessions[spaceID], msg)
	return s.persist()
}

// ReplaceLast swaps the final message for msg and persists. Explicit
// no-op when the transcript is empty or absent.
func (s *TranscriptStore) ReplaceLast(spaceID string, msg domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.sessions[spaceID]
	if len(msgs) == 0 {
		logger.Debug("transcripts: ReplaceLast on empty transcript %q ignored", spaceID)
		return nil
	}
	msgs[len(msgs)-1] = msg
	return s.persist()
}

// Clear replaces the space's transcript with an empty one and persists.
// The key stays present, matching the original client's behaviour.
func (s *TranscriptStore) Clear(spaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[spaceID] = []domain.ChatMessage{}
	return s.persist()
}

// persist writes the whole transcripts record (caller must hold the lock).
func (s *TranscriptStore) persist() error {
	return s.state.Save(StateKey, s.sessions)
}
