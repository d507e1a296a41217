package driven

import (
	"context"
	"time"
)

// UploadLedger records which local file revisions have already been
// uploaded, so the watch service never uploads the same revision twice.
// A revision is identified by path plus modification time.
type UploadLedger interface {
	// Seen reports whether this exact revision was uploaded before.
	Seen(ctx context.Context, path string, modTime time.Time) (bool, error)

	// Record marks a revision as uploaded, storing the content ID the
	// backend assigned.
	Record(ctx context.Context, path string, modTime time.Time, contentID string) error

	// Close releases the underlying storage.
	Close() error
}
