package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_RoundTrip(t *testing.T) {
	store := NewStateStore()

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, store.Save("rec", in))

	var out map[string]int
	ok, err := store.Load("rec", &out)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestStateStore_LoadMissing(t *testing.T) {
	store := NewStateStore()

	var out map[string]int
	ok, err := store.Load("missing", &out)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestStateStore_Delete(t *testing.T) {
	store := NewStateStore()
	require.NoError(t, store.Save("rec", "value"))

	require.NoError(t, store.Delete("rec"))

	var out string
	ok, err := store.Load("rec", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStore_SnapshotIsolated(t *testing.T) {
	store := NewStateStore()

	in := []string{"x"}
	require.NoError(t, store.Save("rec", in))

	// Mutating the original after Save must not affect the stored copy.
	in[0] = "mutated"

	var out []string
	ok, err := store.Load("rec", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, out)
}
