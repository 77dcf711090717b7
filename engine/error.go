package engine

import "errors"

// Common engine errors.
//
// Pattern validation failures (empty pair list, empty key or value) are
// reported by New as the pattern package's errors, wrapped per pair; use
// errors.Is to classify them.
//
// Allocation failure has no error here: Go's allocator aborts the process
// instead of returning, so an out-of-memory condition cannot be surfaced
// as a value.
var (
	// ErrEmptySource indicates a nil or empty source buffer
	ErrEmptySource = errors.New("source buffer is empty")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid engine configuration")
)
