package attendance

import "errors"

var (
	// ErrAlreadyPunchedIn means an open session already exists for the
	// employee; they must punch out first.
	ErrAlreadyPunchedIn = errors.New("already punched in, punch out first")

	// ErrNotPunchedIn means there is no open session to close.
	ErrNotPunchedIn = errors.New("not currently punched in")

	ErrSessionNotFound = errors.New("attendance session not found")
)
