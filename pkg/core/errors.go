package core

import "errors"

// Common errors.
//
// Format errors (version/token parsing) are always recoverable and surfaced
// to the immediate caller. Ordering and state errors indicate either a logic
// bug upstream or an attempt to insert stale history; they are rejected and
// never silently reordered. Nothing is retried internally.
var (
	// ErrInvalidVersion reports a version string that is not exactly three
	// non-negative integer fields.
	ErrInvalidVersion = errors.New("invalid version string")

	// ErrMalformedToken reports a file name token that does not split into a
	// timestamp part and a version part.
	ErrMalformedToken = errors.New("malformed file name token")

	// ErrInvalidTimestamp reports a token timestamp that does not match the
	// fixed file name pattern.
	ErrInvalidTimestamp = errors.New("invalid file name timestamp")

	// ErrOutOfOrder reports an append whose timestamp is earlier than the
	// latest entry of the history.
	ErrOutOfOrder = errors.New("instance datetime incorrectly ordered")

	// ErrDeleted reports an append onto a deleted history that is not a
	// restoration.
	ErrDeleted = errors.New("cannot add to a deleted history")

	// ErrEmptyHistory reports a lifecycle operation against a history with
	// zero instances. A history should never be empty after construction, so
	// this signals a programming error in the entity layer.
	ErrEmptyHistory = errors.New("history has no instances")

	// ErrInvalidFolder reports an artifact folder that ends in a path
	// separator.
	ErrInvalidFolder = errors.New("folder must not end in a path separator")

	// ErrNotFound reports an unknown entity id.
	ErrNotFound = errors.New("entity not found")
)
