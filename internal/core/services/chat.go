package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService runs chat turns against a space and keeps the transcript.
type ChatService struct {
	backend     driven.Backend
	session     driven.SessionStore
	transcripts driven.TranscriptStore
}

// NewChatService creates a new chat service.
func NewChatService(backend driven.Backend, session driven.SessionStore, transcripts driven.TranscriptStore) *ChatService {
	return &ChatService{backend: backend, session: session, transcripts: transcripts}
}

// Send appends the user turn, sends it with the prior history, and
// appends and returns the assistant turn. The user turn is appended
// before the call, so on failure it stays in the transcript and the
// caller decides whether to roll it back; the error itself propagates
// unchanged.
func (s *ChatService) Send(ctx context.Context, spaceID, text string) (domain.ChatMessage, error) {
	if !s.session.IsAuthenticated() {
		return domain.ChatMessage{}, domain.ErrAuthRequired
	}
	text = strings.TrimSpace(text)
	if spaceID == "" || text == "" {
		return domain.ChatMessage{}, fmt.Errorf("space and message are required: %w", domain.ErrInvalidInput)
	}

	// History is captured before the optimistic append: the request
	// carries prior turns only, not the message being sent.
	history := domain.HistoryForRequest(s.transcripts.History(spaceID))

	userTurn := domain.ChatMessage{Role: domain.RoleUser, Content: text}
	if err := s.transcripts.Append(spaceID, userTurn); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("append user turn: %w", err)
	}

	resp, err := s.backend.SendMessage(ctx, domain.ChatRequest{
		UserID:  s.session.Current().UserID,
		SpaceID: spaceID,
		Message: text,
		History: history,
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}

	assistantTurn := domain.ChatMessage{
		Role:    domain.RoleAssistant,
		Content: resp.Answer,
		Context: resp.Context,
	}
	if err := s.transcripts.Append(spaceID, assistantTurn); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("append assistant turn: %w", err)
	}
	return assistantTurn, nil
}

// History returns the space's transcript in append order.
func (s *ChatService) History(spaceID string) []domain.ChatMessage {
	return s.transcripts.History(spaceID)
}

// ClearHistory empties the space's transcript.
func (s *ChatService) ClearHistory(spaceID string) error {
	return s.transcripts.Clear(spaceID)
}
