package repl

import "errors"

var (
	// ErrOutOfBounds reports a history index outside the stored entries.
	ErrOutOfBounds = errors.New("index out of range")
	// ErrEditDeclined reports that the user abandoned an editor session
	// after a parse failure.
	ErrEditDeclined = errors.New("decline edit")
)
