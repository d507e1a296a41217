package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/chat"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/session"
	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/state/memory"
	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

// fakeBackend is a scriptable driven.Backend for service tests.
type fakeBackend struct {
	registerErr error
	loginSess   domain.Session
	loginErr    error

	spaces    []domain.Space
	space     domain.Space
	spaceErr  error
	deleteErr error

	contents   []domain.Content
	content    domain.Content
	contentErr error

	chatResp domain.ChatResponse
	chatErr  error

	// Captured inputs.
	lastSpaceCreate domain.SpaceCreate
	lastUpload      domain.UploadRequest
	lastChat        domain.ChatRequest
	uploadCount     int
}

func (f *fakeBackend) Register(_ context.Context, _, _, _ string) error {
	return f.registerErr
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (domain.Session, error) {
	return f.loginSess, f.loginErr
}

func (f *fakeBackend) CreateSpace(_ context.Context, req domain.SpaceCreate) (domain.Space, error) {
	f.lastSpaceCreate = req
	return f.space, f.spaceErr
}

func (f *fakeBackend) ListSpaces(_ context.Context, _ string) ([]domain.Space, error) {
	return f.spaces, f.spaceErr
}

func (f *fakeBackend) GetSpace(_ context.Context, _ string) (domain.Space, error) {
	return f.space, f.spaceErr
}

func (f *fakeBackend) UpdateSpace(_ context.Context, _ string, _ domain.SpaceUpdate) (domain.Space, error) {
	return f.space, f.spaceErr
}

func (f *fakeBackend) DeleteSpace(_ context.Context, _ string) error {
	return f.deleteErr
}

func (f *fakeBackend) UploadContent(_ context.Context, req domain.UploadRequest) (domain.Content, error) {
	f.lastUpload = req
	f.uploadCount++
	return f.content, f.contentErr
}

func (f *fakeBackend) ListContents(_ context.Context, _ string) ([]domain.Content, error) {
	return f.contents, f.contentErr
}

func (f *fakeBackend) SendMessage(_ context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	f.lastChat = req
	return f.chatResp, f.chatErr
}

// newSessionStore returns a session store over in-memory state.
func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(memory.NewStateStore())
	require.NoError(t, err)
	return store
}

// newTranscriptStore returns a transcript store over in-memory state.
func newTranscriptStore(t *testing.T) *chat.TranscriptStore {
	t.Helper()
	store, err := chat.NewTranscriptStore(memory.NewStateStore())
	require.NoError(t, err)
	return store
}

// loggedIn returns a session store already holding a session.
func loggedIn(t *testing.T) *session.Store {
	t.Helper()
	store := newSessionStore(t)
	store.Login(domain.Session{Token: "t1", UserID: "u1", FullName: "Ann", Email: "a@x.com"})
	return store
}
