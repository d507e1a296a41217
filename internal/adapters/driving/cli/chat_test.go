package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

func TestChatSendCmd_PrintsAnswerAndSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "chat", "send", "space-1", "What is osmosis?")

	assert.NoError(t, err)
	assert.Contains(t, out, "Osmosis is diffusion of water.")
	assert.Contains(t, out, "Sources:")
	assert.Contains(t, out, "[1] notes.pdf, page 3")
}

func TestChatSendCmd_Failure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	chatService = &mockChatService{err: errMock}

	_, err := execute(t, "chat", "send", "space-1", "hi")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat failed")
}

func TestChatHistoryCmd_ShowsConversation(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	chatService = &mockChatService{
		history: []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "What is osmosis?"},
			{Role: domain.RoleAssistant, Content: "Diffusion of water.",
				Context: []domain.Citation{{Source: "notes.pdf", Page: 3}}},
		},
	}

	out, err := execute(t, "chat", "history", "space-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "You: What is osmosis?")
	assert.Contains(t, out, "Tutor: Diffusion of water.")
	assert.Contains(t, out, "[1] notes.pdf, page 3")
}

func TestChatHistoryCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	chatService = &mockChatService{}

	out, err := execute(t, "chat", "history", "space-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "No conversation yet.")
}

func TestChatClearCmd_Clears(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockChatService{}
	chatService = mock

	out, err := execute(t, "chat", "clear", "space-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "Conversation cleared.")
	assert.Equal(t, []string{"space-1"}, mock.cleared)
}

func TestChatCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	chatService = nil

	_, err := execute(t, "chat", "send", "space-1", "hi")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat service not configured")
}
