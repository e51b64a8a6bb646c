package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/core"
	"github.com/ib-77/result/pkg/rop/option"
)

// Result holds a value of type T, a declared failure of type E, or nothing.
// The zero value is Empty.
type Result[E error, T any] struct {
	u core.Union[E, T]
}

var (
	_ core.Mandatory[int] = Result[error, int]{}
	_ core.Optional[int]  = Result[error, int]{}
	_ core.WithIdentity   = Result[error, int]{}
)

// Success panics with rop.ErrInvariantViolation when value is nil.
func Success[E error, T any](value T) Result[E, T] {
	return Result[E, T]{u: core.Success[E, T](value)}
}

// Failure panics with rop.ErrInvariantViolation when err is nil.
func Failure[E error, T any](err E) Result[E, T] {
	return Result[E, T]{u: core.Failure[E, T](err)}
}

// Empty builds a Result holding neither a value nor a failure.
func Empty[E error, T any]() Result[E, T] {
	return Result[E, T]{u: core.Empty[E, T]()}
}

// Of calls supplier once. A nil error yields Success, or Empty when the
// value is nil. An error of type E yields Failure. Any other error is
// re-panicked unchanged.
func Of[E error, T any](supplier func() (T, error)) Result[E, T] {
	r, fault := TryOf[E](supplier)
	if fault != nil {
		panic(fault)
	}
	return r
}

// TryOf is Of returning the unexpected fault instead of panicking with it.
func TryOf[E error, T any](supplier func() (T, error)) (Result[E, T], error) {
	value, err := supplier()
	if rop.IsNil(err) {
		return fromValue[E](value), nil
	}

	e, fault := rop.Capture[E](err)
	if fault != nil {
		return Result[E, T]{}, fault
	}
	return Failure[E, T](e), nil
}

// From calls a supplier that can only fail with E.
func From[E error, T any](supplier func() (T, E)) Result[E, T] {
	value, err := supplier()
	if !rop.IsNil(err) {
		return Failure[E, T](err)
	}
	return fromValue[E](value)
}

func fromValue[E error, T any](value T) Result[E, T] {
	if rop.IsNil(value) {
		return Empty[E, T]()
	}
	return Success[E](value)
}

// Map transforms a success value; failure and empty pass through and
// mapper is not called.
func Map[E error, T, U any](r Result[E, T], mapper func(T) U) Result[E, U] {
	return Result[E, U]{u: core.Map(r.u, mapper)}
}

// FlatMap returns mapper(value) for a success, whatever its state.
func FlatMap[E error, T, U any](r Result[E, T], mapper func(T) Result[E, U]) Result[E, U] {
	return Result[E, U]{u: core.FlatMap(r.u, func(v T) core.Union[E, U] {
		return mapper(v).u
	})}
}

// Fold collapses r to a plain value.
func Fold[E error, T, R any](r Result[E, T],
	onSuccess func(T) R,
	onFailure func(E) R,
	onEmpty func() R) R {
	return core.Fold(r.u, onSuccess, onFailure, onEmpty)
}

// Peek calls consumer with a success value and returns r unchanged.
func (r Result[E, T]) Peek(consumer func(T)) Result[E, T] {
	r.u.Peek(consumer)
	return r
}

// PeekFailure calls consumer with a declared failure and returns r unchanged.
func (r Result[E, T]) PeekFailure(consumer func(E)) Result[E, T] {
	r.u.PeekFailure(consumer)
	return r
}

// Unwrap returns the value. A failure returns the stored E unchanged and an
// empty Result returns an error wrapping rop.ErrNoSuchValue.
func (r Result[E, T]) Unwrap() (T, error) {
	return r.u.Unwrap()
}

// MustUnwrap returns the value or panics with what Unwrap would return.
func (r Result[E, T]) MustUnwrap() T {
	return r.u.MustUnwrap()
}

// UnwrapOptional returns Some(value), None for an empty Result, or the
// stored failure unchanged.
func (r Result[E, T]) UnwrapOptional() (option.Value[T], error) {
	return r.u.UnwrapOptional()
}

// MustUnwrapOptional is UnwrapOptional that panics with the stored failure.
func (r Result[E, T]) MustUnwrapOptional() option.Value[T] {
	return r.u.MustUnwrapOptional()
}

// State returns the tag of r.
func (r Result[E, T]) State() rop.State {
	return r.u.State()
}

// IsSuccess returns true if r holds a value
func (r Result[E, T]) IsSuccess() bool {
	return r.u.IsSuccess()
}

// IsFailure returns true if r holds a declared failure
func (r Result[E, T]) IsFailure() bool {
	return r.u.IsFailure()
}

// IsEmpty returns true if r holds neither
func (r Result[E, T]) IsEmpty() bool {
	return r.u.IsEmpty()
}

// Err returns the declared failure, if any.
func (r Result[E, T]) Err() (E, bool) {
	return r.u.Err()
}

// ID identifies the container where it was first built.
func (r Result[E, T]) ID() uuid.UUID {
	return r.u.ID()
}

// CreatedAt time creation (UTC)
func (r Result[E, T]) CreatedAt() time.Time {
	return r.u.CreatedAt()
}

// Equal compares state and payload, ignoring ID and CreatedAt.
func (r Result[E, T]) Equal(other Result[E, T]) bool {
	return r.u.Equal(other.u)
}

// Hash returns the same value for containers that are Equal.
func (r Result[E, T]) Hash() uint64 {
	return r.u.Hash()
}

// String renders r as Success(v), Failure(err) or Empty.
func (r Result[E, T]) String() string {
	return r.u.String()
}
