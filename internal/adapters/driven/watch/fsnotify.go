// Package watch provides the fsnotify-backed directory watcher feeding
// the watch-upload service.
package watch

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.DirWatcher = (*Watcher)(nil)

// Watcher emits file events for one directory using fsnotify.
type Watcher struct {
	fs *fsnotify.Watcher
}

// NewWatcher creates a directory watcher.
func NewWatcher() (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fs: fs}, nil
}

// Watch starts monitoring dir. Create and Write events map onto the
// driven port's event types; everything else (Remove, Rename, Chmod) is
// dropped, since the uploader only cares about new content.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan driven.FileEvent, error) {
	if err := w.fs.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan driven.FileEvent, 64)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}

				var op driven.FileOp
				switch {
				case event.Op.Has(fsnotify.Create):
					op = driven.FileCreated
				case event.Op.Has(fsnotify.Write):
					op = driven.FileModified
				default:
					continue
				}

				select {
				case events <- driven.FileEvent{Path: event.Name, Op: op}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				logger.Warn("watch: %v", err)
			}
		}
	}()

	return events, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
