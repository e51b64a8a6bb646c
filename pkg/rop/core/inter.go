package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/option"
)

// WithState is implemented by every container.
type WithState interface {
	// State returns the container tag
	State() rop.State
	// IsSuccess returns true if the container holds a value
	IsSuccess() bool
	// IsFailure returns true if the container holds a declared failure
	IsFailure() bool
	// IsEmpty returns true if the container holds neither
	IsEmpty() bool
}

// WithIdentity exposes the metadata stamped on a container when it is built.
type WithIdentity interface {
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Mandatory is a container that can be unwrapped into a plain value.
type Mandatory[T any] interface {
	WithState
	// Unwrap returns the value, the declared failure, or rop.ErrNoSuchValue
	Unwrap() (T, error)
	// MustUnwrap is Unwrap that panics instead of returning an error
	MustUnwrap() T
}

// Optional is a container whose absence of value is not a fault.
type Optional[T any] interface {
	WithState
	UnwrapOptional() (option.Value[T], error)
	MustUnwrapOptional() option.Value[T]
}
