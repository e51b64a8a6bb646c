package rop

import "github.com/pkg/errors"

var (
	// ErrNoSuchValue is returned (or panicked with) when a plain value is
	// requested from an empty container. It is never an instance of the
	// declared failure type.
	ErrNoSuchValue = errors.New("no such value")

	// ErrInvariantViolation is the panic payload of a factory given an
	// absent value or error.
	ErrInvariantViolation = errors.New("invariant violation")
)

// NoSuchValue returns ErrNoSuchValue annotated with a stack trace.
func NoSuchValue() error {
	return errors.WithStack(ErrNoSuchValue)
}
