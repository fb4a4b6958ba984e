package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPattern indicates a search was requested with no pattern.
	// An empty pattern is rejected at construction rather than being
	// silently treated as match-everything or match-nothing.
	ErrEmptyPattern = errors.New("empty search pattern")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")

	// ErrRootNotFound indicates the search root does not exist or is not a directory.
	ErrRootNotFound = errors.New("search root not found")

	// ErrBinaryContent indicates a candidate turned out to hold binary
	// content and was skipped rather than searched.
	ErrBinaryContent = errors.New("binary content")
)
