package sim

import "errors"

var (
	// ErrLengthMismatch reports vectors that disagree on the number of resource categories.
	ErrLengthMismatch = errors.New("resource vector length mismatch")
	// ErrNegativeValue reports a resource vector with an entry below zero.
	ErrNegativeValue = errors.New("negative resource value")
	// ErrDuplicateName reports two processes configured with the same display name.
	ErrDuplicateName = errors.New("duplicate process name")
	// ErrUnknownProcess reports a process reference that resolves to nothing.
	ErrUnknownProcess = errors.New("unknown process")
)
