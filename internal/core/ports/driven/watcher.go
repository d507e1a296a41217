package driven

import "context"

// FileOp classifies a filesystem event.
type FileOp int

const (
	// FileCreated means a new file appeared.
	FileCreated FileOp = iota
	// FileModified means an existing file changed.
	FileModified
)

// FileEvent is one filesystem change under a watched directory.
type FileEvent struct {
	Path string
	Op   FileOp
}

// DirWatcher emits events for files changing under a directory.
type DirWatcher interface {
	// Watch starts monitoring dir and returns the event channel. The
	// channel closes when ctx is cancelled or the watcher is closed.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Close stops the watcher.
	Close() error
}
