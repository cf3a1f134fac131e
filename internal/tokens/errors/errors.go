package errors

import "errors"

var (
	ErrFeedNotFound = errors.New("token feed not found")

	// ErrAllocationConflict signals that two first-time allocations raced on
	// the unique feed key. Always retried inside the service, never returned
	// to callers.
	ErrAllocationConflict = errors.New("concurrent token allocation conflict")
)
