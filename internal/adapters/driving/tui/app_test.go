package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// stubChatService returns a canned answer.
type stubChatService struct {
	answer  domain.ChatMessage
	history []domain.ChatMessage
	err     error
	sent    []string
}

func (s *stubChatService) Send(_ context.Context, _, text string) (domain.ChatMessage, error) {
	s.sent = append(s.sent, text)
	return s.answer, s.err
}

func (s *stubChatService) History(string) []domain.ChatMessage { return s.history }

func (s *stubChatService) ClearHistory(string) error { return nil }

func newTestApp(t *testing.T, chat *stubChatService) *App {
	t.Helper()
	app, err := NewApp(chat, "space-1", "Biology 101", nil)
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

func TestNewApp_RequiresChatService(t *testing.T) {
	_, err := NewApp(nil, "space-1", "", nil)
	assert.Error(t, err)
}

func TestNewApp_RequiresSpaceID(t *testing.T) {
	_, err := NewApp(&stubChatService{}, "", "", nil)
	assert.Error(t, err)
}

func TestNewApp_LoadsStoredTranscript(t *testing.T) {
	chat := &stubChatService{
		history: []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "earlier question"},
		},
	}
	app := newTestApp(t, chat)

	require.Len(t, app.Transcript(), 1)
	assert.Contains(t, app.View(), "earlier question")
}

func TestApp_EnterSendsAndAppendsUserTurn(t *testing.T) {
	chat := &stubChatService{answer: domain.ChatMessage{Role: domain.RoleAssistant, Content: "an answer"}}
	app := newTestApp(t, chat)

	app.input.SetValue("What is osmosis?")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	require.NotNil(t, cmd)
	assert.True(t, app.Waiting())
	require.Len(t, app.Transcript(), 1)
	assert.Equal(t, domain.RoleUser, app.Transcript()[0].Role)
	assert.Equal(t, "What is osmosis?", app.Transcript()[0].Content)
	assert.Empty(t, app.input.Value())

	// The command performs the send.
	msg := cmd()
	received, ok := msg.(answerReceived)
	require.True(t, ok)
	assert.Equal(t, "an answer", received.answer.Content)
	assert.Equal(t, []string{"What is osmosis?"}, chat.sent)
}

func TestApp_AnswerAppendsAssistantTurn(t *testing.T) {
	app := newTestApp(t, &stubChatService{})
	app.transcript = []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}
	app.waiting = true

	model, _ := app.Update(answerReceived{
		answer: domain.ChatMessage{
			Role:    domain.RoleAssistant,
			Content: "an answer",
			Context: []domain.Citation{{Source: "notes.pdf", Page: 2}},
		},
	})
	app = model.(*App)

	assert.False(t, app.Waiting())
	require.Len(t, app.Transcript(), 2)
	assert.Equal(t, domain.RoleAssistant, app.Transcript()[1].Role)
	assert.Contains(t, app.View(), "notes.pdf, page 2")
}

func TestApp_SendErrorKeepsUserTurnAndShowsError(t *testing.T) {
	app := newTestApp(t, &stubChatService{})
	app.transcript = []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}
	app.waiting = true

	model, _ := app.Update(answerReceived{
		err: &domain.APIError{Message: "Space has no processed content yet", Status: 400},
	})
	app = model.(*App)

	assert.False(t, app.Waiting())
	require.Len(t, app.Transcript(), 1)
	assert.Contains(t, app.View(), "Space has no processed content yet")
	assert.NoError(t, app.Err())
}

func TestApp_UnauthorizedEndsSession(t *testing.T) {
	app := newTestApp(t, &stubChatService{})
	app.waiting = true

	model, cmd := app.Update(answerReceived{
		err: &domain.APIError{Message: "Unauthorized", Status: 401},
	})
	app = model.(*App)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Error(t, app.Err())
}

func TestApp_EmptyInputIsNotSent(t *testing.T) {
	chat := &stubChatService{}
	app := newTestApp(t, chat)

	app.input.SetValue("   ")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.Nil(t, cmd)
	assert.False(t, app.Waiting())
	assert.Empty(t, app.Transcript())
}

func TestApp_SecondSendWhileWaitingIsIgnored(t *testing.T) {
	app := newTestApp(t, &stubChatService{})
	app.waiting = true

	app.input.SetValue("another")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestApp_EscQuits(t *testing.T) {
	app := newTestApp(t, &stubChatService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
