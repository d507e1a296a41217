// Package sqlite provides the SQLite-backed upload ledger used by the
// watch service to remember which local file revisions were already
// uploaded.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
)

// Ensure Ledger implements the interface.
var _ driven.UploadLedger = (*Ledger)(nil)

// schema bootstraps the ledger table. A revision is keyed by path plus
// modification time so an edited file is uploaded again while an
// untouched one never is.
const schema = `
CREATE TABLE IF NOT EXISTS uploads (
    path        TEXT    NOT NULL,
    mod_time_ns INTEGER NOT NULL,
    content_id  TEXT    NOT NULL,
    uploaded_at INTEGER NOT NULL,
    PRIMARY KEY (path, mod_time_ns)
);
`

// Ledger records uploaded file revisions in a SQLite database.
type Ledger struct {
	db   *sql.DB
	path string
}

// NewLedger opens (or creates) the ledger database. If dataDir is empty,
// defaults to ~/.tutorwise/data/uploads.db.
func NewLedger(dataDir string) (*Ledger, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tutorwise", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "uploads.db")

	// WAL mode for better concurrency between watcher goroutines.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db, path: dbPath}, nil
}

// Seen reports whether this exact revision was uploaded before.
func (l *Ledger) Seen(ctx context.Context, path string, modTime time.Time) (bool, error) {
	var count int
	err := l.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM uploads WHERE path = ? AND mod_time_ns = ?",
		path, modTime.UnixNano(),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query ledger: %w", err)
	}
	return count > 0, nil
}

// Record marks a revision as uploaded.
func (l *Ledger) Record(ctx context.Context, path string, modTime time.Time, contentID string) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO uploads (path, mod_time_ns, content_id, uploaded_at) VALUES (?, ?, ?, ?)",
		path, modTime.UnixNano(), contentID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record upload: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Ledger) Path() string {
	return l.path
}
