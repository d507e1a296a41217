package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorwise/tutorwise-cli/internal/adapters/driven/state/memory"
	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

func newStore(t *testing.T) (*TranscriptStore, *memory.StateStore) {
	t.Helper()
	state := memory.NewStateStore()
	store, err := NewTranscriptStore(state)
	require.NoError(t, err)
	return store, state
}

func TestTranscriptStore_HistoryEmptyByDefault(t *testing.T) {
	store, _ := newStore(t)

	history := store.History("space1")

	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestTranscriptStore_AppendPreservesOrder(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}))
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleAssistant, Content: "hello"}))

	history := store.History("space1")
	require.Len(t, history, 2)
	assert.Equal(t, domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}, history[0])
	assert.Equal(t, domain.ChatMessage{Role: domain.RoleAssistant, Content: "hello"}, history[1])
}

func TestTranscriptStore_AppendGrowsByOne(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "one"}))

	before := len(store.History("space1"))
	msg := domain.ChatMessage{Role: domain.RoleUser, Content: "two"}
	require.NoError(t, store.Append("space1", msg))

	history := store.History("space1")
	assert.Len(t, history, before+1)
	assert.Equal(t, msg, history[len(history)-1])
}

func TestTranscriptStore_SpacesAreIsolated(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "a"}))
	require.NoError(t, store.Append("space2", domain.ChatMessage{Role: domain.RoleUser, Content: "b"}))

	assert.Len(t, store.History("space1"), 1)
	assert.Len(t, store.History("space2"), 1)
	assert.Equal(t, "a", store.History("space1")[0].Content)
	assert.Equal(t, "b", store.History("space2")[0].Content)
}

func TestTranscriptStore_ReplaceLast(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}))
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleAssistant, Content: "thinking..."}))

	final := domain.ChatMessage{
		Role:    domain.RoleAssistant,
		Content: "answer",
		Context: []domain.Citation{{Source: "notes.pdf", Page: 2, Content: "excerpt"}},
	}
	require.NoError(t, store.ReplaceLast("space1", final))

	history := store.History("space1")
	require.Len(t, history, 2)
	assert.Equal(t, final, history[1])
	assert.Equal(t, "hi", history[0].Content)
}

func TestTranscriptStore_ReplaceLastOnEmptyIsNoOp(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.ReplaceLast("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "x"}))

	assert.Empty(t, store.History("space1"))
}

func TestTranscriptStore_Clear(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}))

	require.NoError(t, store.Clear("space1"))

	assert.Empty(t, store.History("space1"))
}

func TestTranscriptStore_PersistsAcrossRestart(t *testing.T) {
	store, state := newStore(t)
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}))
	require.NoError(t, store.Append("space1", domain.ChatMessage{
		Role:    domain.RoleAssistant,
		Content: "hello",
		Context: []domain.Citation{{Source: "doc.pdf", Page: 1, Content: "c"}},
	}))

	reloaded, err := NewTranscriptStore(state)
	require.NoError(t, err)

	assert.Equal(t, store.History("space1"), reloaded.History("space1"))
}

func TestTranscriptStore_HistoryReturnsCopy(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Append("space1", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"}))

	history := store.History("space1")
	history[0].Content = "mutated"

	assert.Equal(t, "hi", store.History("space1")[0].Content)
}
