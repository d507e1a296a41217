package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driven"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
	"github.com/tutorwise/tutorwise-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// DefaultWatchExtensions are uploaded when no extensions are configured.
var DefaultWatchExtensions = []string{".pdf", ".txt", ".md", ".docx"}

// DefaultUploadsPerMinute is the sustained upload rate cap. Ingestion is
// expensive server-side, so the watcher stays well below what the
// backend would accept.
const DefaultUploadsPerMinute = 6

// settleDelay is how long a file must sit unchanged before upload, so
// half-written files are not shipped.
const settleDelay = 500 * time.Millisecond

// WatchConfig holds configuration for a watch session.
type WatchConfig struct {
	// Extensions limits which files are uploaded (default: common
	// document types).
	Extensions []string

	// UploadsPerMinute caps the sustained upload rate (default: 6).
	UploadsPerMinute int
}

// WatchService uploads files appearing in a local directory to a space,
// deduplicated through the upload ledger and throttled by a token
// bucket.
type WatchService struct {
	contents driving.ContentService
	watcher  driven.DirWatcher
	ledger   driven.UploadLedger
	cfg      WatchConfig

	mu     sync.Mutex
	active map[string]bool
}

// NewWatchService creates a new watch service.
func NewWatchService(contents driving.ContentService, watcher driven.DirWatcher, ledger driven.UploadLedger, cfg WatchConfig) *WatchService {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultWatchExtensions
	}
	if cfg.UploadsPerMinute <= 0 {
		cfg.UploadsPerMinute = DefaultUploadsPerMinute
	}

	return &WatchService{
		contents: contents,
		watcher:  watcher,
		ledger:   ledger,
		cfg:      cfg,
		active:   make(map[string]bool),
	}
}

// Run watches dir until ctx is cancelled, uploading new file revisions
// with allowed extensions. Blocking.
func (s *WatchService) Run(ctx context.Context, dir, spaceID string) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve watch dir: %w", err)
	}

	s.mu.Lock()
	if s.active[dir] {
		s.mu.Unlock()
		return domain.ErrWatchInProgress
	}
	s.active[dir] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.active, dir)
		s.mu.Unlock()
	}()

	events, err := s.watcher.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	limiter := rate.NewLimiter(rate.Limit(float64(s.cfg.UploadsPerMinute)/60.0), 1)
	logger.Info("watch: watching %s for space %s", dir, spaceID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.hasAllowedExtension(ev.Path) {
				continue
			}
			if err := s.handle(ctx, ev.Path, spaceID, limiter); err != nil {
				if domain.IsUnauthorized(err) {
					// The session is already torn down; stop watching.
					return err
				}
				// Anything else is per-file: log and keep watching.
				logger.Error("watch: %s: %v", ev.Path, err)
			}
		}
	}
}

// handle uploads one file revision unless the ledger has seen it.
func (s *WatchService) handle(ctx context.Context, path, spaceID string, limiter *rate.Limiter) error {
	// Let the writer finish before stat'ing the file.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(settleDelay):
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		return nil
	}

	seen, err := s.ledger.Seen(ctx, path, info.ModTime())
	if err != nil {
		return fmt.Errorf("check ledger: %w", err)
	}
	if seen {
		logger.Debug("watch: %s unchanged, skipping", path)
		return nil
	}

	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	content, err := s.contents.Upload(ctx, spaceID, path, "")
	if err != nil {
		return err
	}

	if err := s.ledger.Record(ctx, path, info.ModTime(), content.ID); err != nil {
		return fmt.Errorf("record upload: %w", err)
	}
	return nil
}

// hasAllowedExtension checks the file against the configured extensions.
func (s *WatchService) hasAllowedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range s.cfg.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
