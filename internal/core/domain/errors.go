package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates the operation needs a logged-in session.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyTranscript indicates a transcript operation needs at least
	// one message (ReplaceLast on an empty transcript is a no-op, but
	// services may want to surface the condition).
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrWatchInProgress indicates a watch session is already running
	// for the directory.
	ErrWatchInProgress = errors.New("watch in progress")
)
