package todo

import "errors"

var (
	// ErrOutOfRange is returned by positional operations for an index
	// outside the list. The list is left untouched.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned by ID-keyed operations for an unknown ID.
	ErrNotFound = errors.New("todo not found")

	// ErrBadPattern is returned by SetFilter for a malformed glob.
	ErrBadPattern = errors.New("bad filter pattern")
)
