package storage

import "errors"

// Common client storage errors
var (
	// ErrEntityNotFound indicates that no entity exists for the given id
	ErrEntityNotFound = errors.New("entity not found")

	// ErrInvalidCursor indicates a cursor whose timestamp is not a valid
	// instant. Passing one is a programming error, not a sync condition.
	ErrInvalidCursor = errors.New("invalid cursor timestamp")

	// ErrUnknownResource indicates a resource name without a local bucket
	ErrUnknownResource = errors.New("unknown resource")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
