package cli

import (
	"context"
	"errors"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// mockAccountService returns canned sessions.
type mockAccountService struct {
	session domain.Session
	err     error
	logouts int
}

func (m *mockAccountService) Register(_ context.Context, _, _, _ string) (domain.Session, error) {
	return m.session, m.err
}

func (m *mockAccountService) Login(_ context.Context, _, _ string) (domain.Session, error) {
	return m.session, m.err
}

func (m *mockAccountService) Logout() { m.logouts++ }

func (m *mockAccountService) Current() domain.Session { return m.session }

func (m *mockAccountService) IsAuthenticated() bool { return m.session.Token != "" }

// mockSpaceService returns canned spaces and records updates.
type mockSpaceService struct {
	spaces     []domain.Space
	space      domain.Space
	err        error
	lastUpdate domain.SpaceUpdate
	deleted    []string
}

func (m *mockSpaceService) Create(_ context.Context, title, description string) (domain.Space, error) {
	if m.err != nil {
		return domain.Space{}, m.err
	}
	return domain.Space{ID: "space-1", Title: title, Description: description}, nil
}

func (m *mockSpaceService) List(context.Context) ([]domain.Space, error) {
	return m.spaces, m.err
}

func (m *mockSpaceService) Get(context.Context, string) (domain.Space, error) {
	return m.space, m.err
}

func (m *mockSpaceService) Update(_ context.Context, _ string, update domain.SpaceUpdate) (domain.Space, error) {
	m.lastUpdate = update
	return m.space, m.err
}

func (m *mockSpaceService) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

// mockContentService returns canned documents.
type mockContentService struct {
	content  domain.Content
	contents []domain.Content
	err      error
}

func (m *mockContentService) Upload(_ context.Context, _, _, _ string) (domain.Content, error) {
	return m.content, m.err
}

func (m *mockContentService) List(context.Context, string) ([]domain.Content, error) {
	return m.contents, m.err
}

// mockChatService returns a canned answer and transcript.
type mockChatService struct {
	answer  domain.ChatMessage
	history []domain.ChatMessage
	err     error
	cleared []string
}

func (m *mockChatService) Send(context.Context, string, string) (domain.ChatMessage, error) {
	return m.answer, m.err
}

func (m *mockChatService) History(string) []domain.ChatMessage { return m.history }

func (m *mockChatService) ClearHistory(spaceID string) error {
	m.cleared = append(m.cleared, spaceID)
	return m.err
}

// mockWatchService blocks until cancelled.
type mockWatchService struct {
	err error
}

func (m *mockWatchService) Run(ctx context.Context, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	<-ctx.Done()
	return ctx.Err()
}

var errMock = errors.New("mock failure")

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldAccount := accountService
	oldSpace := spaceService
	oldContent := contentService
	oldChat := chatService
	oldWatch := watchService

	accountService = &mockAccountService{
		session: domain.Session{
			Token:         "token-1",
			UserID:        "user-1",
			FullName:      "Test User",
			Email:         "test@example.com",
			Authenticated: true,
		},
	}
	spaceService = &mockSpaceService{
		spaces: []domain.Space{
			{ID: "space-1", Title: "Biology 101", Description: "Cell biology"},
		},
		space: domain.Space{ID: "space-1", Title: "Biology 101"},
	}
	contentService = &mockContentService{
		content: domain.Content{ID: "content-1", Title: "notes.pdf", Status: domain.ContentProcessing},
		contents: []domain.Content{
			{ID: "content-1", Title: "notes.pdf", Status: domain.ContentProcessed},
		},
	}
	chatService = &mockChatService{
		answer: domain.ChatMessage{
			Role:    domain.RoleAssistant,
			Content: "Osmosis is diffusion of water.",
			Context: []domain.Citation{{Source: "notes.pdf", Page: 3, Content: "..."}},
		},
	}
	watchService = &mockWatchService{}

	return func() {
		accountService = oldAccount
		spaceService = oldSpace
		contentService = oldContent
		chatService = oldChat
		watchService = oldWatch
	}
}
