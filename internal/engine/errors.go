package engine

import "errors"

// Errors returned by engine operations.
//
// ErrAtBoundary and ErrNoOp are expected outcomes of ordinary editing and
// are never shown to the user. ErrInvalidLineNumber, ErrUnknownCommand and
// ErrNotFound become a one-line message. ErrInvalidState marks a broken
// invariant.
var (
	// ErrAtBoundary indicates a motion past the start or end of the buffer.
	ErrAtBoundary = errors.New("at buffer boundary")

	// ErrNoOp indicates a structural edit that had nothing to do.
	ErrNoOp = errors.New("nothing to do")

	// ErrInvalidLineNumber indicates a goto target outside the buffer.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrUnknownCommand indicates command input with no recognised prefix.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotFound indicates a search that produced no match.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates an operation that would break a buffer
	// invariant, such as removing the last remaining line.
	ErrInvalidState = errors.New("invalid buffer state")
)
