package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
)

func TestWatcher_EmitsCreate(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := watcher.Watch(ctx, dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	select {
	case ev := <-events:
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, driven.FileCreated, ev.Op)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcher_ChannelClosesOnCancel(t *testing.T) {
	watcher, err := NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := watcher.Watch(ctx, t.TempDir())
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close within 2s")
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	watcher, err := NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	_, err = watcher.Watch(context.Background(), "/does/not/exist")
	assert.Error(t, err)
}
