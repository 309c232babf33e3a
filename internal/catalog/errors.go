package catalog

import "errors"

// Error kinds reported by catalog operations. Every error returned by the
// store wraps exactly one of these; callers match them with errors.Is.
var (
	// ErrInvalidInput is a malformed or out-of-range operation argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means no record carries the referenced ID.
	ErrNotFound = errors.New("book not found")

	// ErrStorageUnavailable means the catalog file cannot be read or written.
	ErrStorageUnavailable = errors.New("catalog storage unavailable")

	// ErrCorruptData means the catalog file does not parse into valid records.
	ErrCorruptData = errors.New("catalog data corrupt")
)
