package optresult

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/core"
	"github.com/ib-77/result/pkg/rop/option"
)

// OptionalResult holds a value of type T, a declared failure of type E, or
// nothing. The zero value is Empty.
type OptionalResult[E error, T any] struct {
	u core.Union[E, T]
}

var (
	_ core.Optional[int] = OptionalResult[error, int]{}
	_ core.WithIdentity  = OptionalResult[error, int]{}
)

// Success panics with rop.ErrInvariantViolation when value is nil.
func Success[E error, T any](value T) OptionalResult[E, T] {
	return OptionalResult[E, T]{u: core.Success[E, T](value)}
}

// Failure panics with rop.ErrInvariantViolation when err is nil.
func Failure[E error, T any](err E) OptionalResult[E, T] {
	return OptionalResult[E, T]{u: core.Failure[E, T](err)}
}

// Empty builds an OptionalResult holding neither a value nor a failure.
func Empty[E error, T any]() OptionalResult[E, T] {
	return OptionalResult[E, T]{u: core.Empty[E, T]()}
}

// Of calls supplier once: Some becomes Success, None becomes Empty, an
// error of type E becomes Failure, and any other error is re-panicked
// unchanged.
func Of[E error, T any](supplier func() (option.Value[T], error)) OptionalResult[E, T] {
	r, fault := TryOf[E](supplier)
	if fault != nil {
		panic(fault)
	}
	return r
}

// TryOf is Of returning the unexpected fault instead of panicking with it.
func TryOf[E error, T any](supplier func() (option.Value[T], error)) (OptionalResult[E, T], error) {
	value, err := supplier()
	if rop.IsNil(err) {
		return fromOption[E](value), nil
	}

	e, fault := rop.Capture[E](err)
	if fault != nil {
		return OptionalResult[E, T]{}, fault
	}
	return Failure[E, T](e), nil
}

// OfPtr is Of for suppliers that signal "nothing" with a nil pointer.
func OfPtr[E error, T any](supplier func() (*T, error)) OptionalResult[E, T] {
	return Of[E](func() (option.Value[T], error) {
		p, err := supplier()
		return option.FromPtr(p), err
	})
}

// From calls a supplier that can only fail with E.
func From[E error, T any](supplier func() (option.Value[T], E)) OptionalResult[E, T] {
	value, err := supplier()
	if !rop.IsNil(err) {
		return Failure[E, T](err)
	}
	return fromOption[E](value)
}

func fromOption[E error, T any](value option.Value[T]) OptionalResult[E, T] {
	if v, ok := value.Get(); ok {
		return Success[E](v)
	}
	return Empty[E, T]()
}

// Map transforms a success value; failure and empty pass through and
// mapper is not called.
func Map[E error, T, U any](r OptionalResult[E, T], mapper func(T) U) OptionalResult[E, U] {
	return OptionalResult[E, U]{u: core.Map(r.u, mapper)}
}

// FlatMap returns mapper(value) for a success, whatever its state.
func FlatMap[E error, T, U any](r OptionalResult[E, T],
	mapper func(T) OptionalResult[E, U]) OptionalResult[E, U] {
	return OptionalResult[E, U]{u: core.FlatMap(r.u, func(v T) core.Union[E, U] {
		return mapper(v).u
	})}
}

// Fold collapses r to a plain value.
func Fold[E error, T, R any](r OptionalResult[E, T],
	onSuccess func(T) R,
	onFailure func(E) R,
	onEmpty func() R) R {
	return core.Fold(r.u, onSuccess, onFailure, onEmpty)
}

// Peek calls consumer with a success value and returns r unchanged.
func (r OptionalResult[E, T]) Peek(consumer func(T)) OptionalResult[E, T] {
	r.u.Peek(consumer)
	return r
}

// PeekFailure calls consumer with a declared failure and returns r unchanged.
func (r OptionalResult[E, T]) PeekFailure(consumer func(E)) OptionalResult[E, T] {
	r.u.PeekFailure(consumer)
	return r
}

// UnwrapOptional returns Some(value), None, or the stored failure unchanged.
func (r OptionalResult[E, T]) UnwrapOptional() (option.Value[T], error) {
	return r.u.UnwrapOptional()
}

// MustUnwrapOptional panics with the stored failure itself.
func (r OptionalResult[E, T]) MustUnwrapOptional() option.Value[T] {
	return r.u.MustUnwrapOptional()
}

// State returns the tag of r.
func (r OptionalResult[E, T]) State() rop.State {
	return r.u.State()
}

// IsSuccess returns true if r holds a value
func (r OptionalResult[E, T]) IsSuccess() bool {
	return r.u.IsSuccess()
}

// IsFailure returns true if r holds a declared failure
func (r OptionalResult[E, T]) IsFailure() bool {
	return r.u.IsFailure()
}

// IsEmpty returns true if r holds neither
func (r OptionalResult[E, T]) IsEmpty() bool {
	return r.u.IsEmpty()
}

// Err returns the declared failure, if any.
func (r OptionalResult[E, T]) Err() (E, bool) {
	return r.u.Err()
}

// ID identifies the container where it was first built.
func (r OptionalResult[E, T]) ID() uuid.UUID {
	return r.u.ID()
}

// CreatedAt time creation (UTC)
func (r OptionalResult[E, T]) CreatedAt() time.Time {
	return r.u.CreatedAt()
}

// Equal compares state and payload, ignoring ID and CreatedAt.
func (r OptionalResult[E, T]) Equal(other OptionalResult[E, T]) bool {
	return r.u.Equal(other.u)
}

// Hash returns the same value for containers that are Equal.
func (r OptionalResult[E, T]) Hash() uint64 {
	return r.u.Hash()
}

// String renders r as Success(v), Failure(err) or Empty.
func (r OptionalResult[E, T]) String() string {
	return r.u.String()
}
