package session

import "errors"

// Engine error taxonomy. The HTTP layer maps these to status codes; the
// learner-facing message stays generic while operator detail travels in
// the wrapped error chain.
var (
	// ErrNotFound: no session with that id.
	ErrNotFound = errors.New("session not found")

	// ErrNotAuthorized: the session exists but belongs to someone else.
	ErrNotAuthorized = errors.New("session does not belong to caller")

	// ErrInvalidState: the operation is illegal in the session's current
	// state, e.g. answering a completed session or fetching a summary
	// early. Checked before any oracle call is made.
	ErrInvalidState = errors.New("invalid session state for operation")

	// ErrConflict: a concurrent writer got there first. The stored
	// session advanced past the version this request read; the caller
	// should re-fetch and resubmit.
	ErrConflict = errors.New("session was modified concurrently")

	// ErrNoContent: the lesson source has no usable concepts.
	ErrNoContent = errors.New("note has no usable content")
)
