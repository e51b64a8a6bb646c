package core

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/option"
)

// Union is an immutable Success(T), Failure(E) or Empty value. The zero
// value is Empty.
type Union[E error, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	state     rop.State
}

var seed = maphash.MakeSeed()

// Success builds a union holding value. It panics with
// rop.ErrInvariantViolation when value is nil.
func Success[E error, T any](value T) Union[E, T] {
	rop.RequireNonNil(value, "success value")
	return Union[E, T]{
		value:     value,
		state:     rop.StateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a union holding the declared failure err. It panics with
// rop.ErrInvariantViolation when err is nil.
func Failure[E error, T any](err E) Union[E, T] {
	rop.RequireNonNil(err, "failure error")
	return Union[E, T]{
		err:       err,
		state:     rop.StateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty builds a union holding neither a value nor a failure.
func Empty[E error, T any]() Union[E, T] {
	return Union[E, T]{
		state:     rop.StateEmpty,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// retype moves a failure or empty union to another value type, keeping its
// identity.
func retype[E error, T, U any](from Union[E, T]) Union[E, U] {
	return Union[E, U]{
		err:       from.err,
		state:     from.state,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Map applies f to a success value. Failures and empties pass through
// untouched and f is not called.
func Map[E error, T, U any](u Union[E, T], f func(T) U) Union[E, U] {
	if u.state == rop.StateSuccess {
		return Success[E, U](f(u.value))
	}
	return retype[E, T, U](u)
}

// FlatMap returns f(value) as is for a success.
func FlatMap[E error, T, U any](u Union[E, T], f func(T) Union[E, U]) Union[E, U] {
	if u.state == rop.StateSuccess {
		return f(u.value)
	}
	return retype[E, T, U](u)
}

// Fold collapses the union with the handler matching its state.
func Fold[E error, T, R any](u Union[E, T],
	onSuccess func(T) R,
	onFailure func(E) R,
	onEmpty func() R) R {

	switch u.state {
	case rop.StateSuccess:
		return onSuccess(u.value)
	case rop.StateFailure:
		return onFailure(u.err)
	default:
		return onEmpty()
	}
}

// Peek calls consumer with a success value and returns u unchanged.
func (u Union[E, T]) Peek(consumer func(T)) Union[E, T] {
	if u.state == rop.StateSuccess {
		consumer(u.value)
	}
	return u
}

// PeekFailure calls consumer with a declared failure and returns u unchanged.
func (u Union[E, T]) PeekFailure(consumer func(E)) Union[E, T] {
	if u.state == rop.StateFailure {
		consumer(u.err)
	}
	return u
}

// Unwrap returns the value, the stored failure unchanged, or an error
// wrapping rop.ErrNoSuchValue when u is empty.
func (u Union[E, T]) Unwrap() (T, error) {
	var zero T
	switch u.state {
	case rop.StateSuccess:
		return u.value, nil
	case rop.StateFailure:
		return zero, u.err
	default:
		return zero, rop.NoSuchValue()
	}
}

// MustUnwrap panics with the stored failure itself, or with an error
// wrapping rop.ErrNoSuchValue when u is empty.
func (u Union[E, T]) MustUnwrap() T {
	switch u.state {
	case rop.StateSuccess:
		return u.value
	case rop.StateFailure:
		panic(u.err)
	default:
		panic(rop.NoSuchValue())
	}
}

// UnwrapOptional returns Some(value), None for an empty union, or the
// stored failure unchanged.
func (u Union[E, T]) UnwrapOptional() (option.Value[T], error) {
	switch u.state {
	case rop.StateSuccess:
		return option.Some(u.value), nil
	case rop.StateFailure:
		return option.None[T](), u.err
	default:
		return option.None[T](), nil
	}
}

// MustUnwrapOptional is UnwrapOptional that panics with the stored failure.
func (u Union[E, T]) MustUnwrapOptional() option.Value[T] {
	if u.state == rop.StateFailure {
		panic(u.err)
	}
	if u.state == rop.StateSuccess {
		return option.Some(u.value)
	}
	return option.None[T]()
}

// State returns the tag of u.
func (u Union[E, T]) State() rop.State {
	return u.state
}

// IsSuccess returns true if u holds a value
func (u Union[E, T]) IsSuccess() bool {
	return u.state == rop.StateSuccess
}

// IsFailure returns true if u holds a declared failure
func (u Union[E, T]) IsFailure() bool {
	return u.state == rop.StateFailure
}

// IsEmpty returns true if u holds neither
func (u Union[E, T]) IsEmpty() bool {
	return u.state == rop.StateEmpty
}

// Value returns the success value, if any.
func (u Union[E, T]) Value() (T, bool) {
	return u.value, u.state == rop.StateSuccess
}

// Err returns the declared failure, if any.
func (u Union[E, T]) Err() (E, bool) {
	return u.err, u.state == rop.StateFailure
}

// ID identifies the union where it was first built; failures and empties
// carried through Map and FlatMap keep it.
func (u Union[E, T]) ID() uuid.UUID {
	return u.id
}

// CreatedAt time creation (UTC)
func (u Union[E, T]) CreatedAt() time.Time {
	return u.createdAt
}

// Equal compares state and payload; identity metadata is ignored. Values
// are compared with reflect.DeepEqual, failures by identity when their
// dynamic type is comparable and deeply otherwise.
func (u Union[E, T]) Equal(other Union[E, T]) bool {
	if u.state != other.state {
		return false
	}

	switch u.state {
	case rop.StateSuccess:
		return reflect.DeepEqual(u.value, other.value)
	case rop.StateFailure:
		return sameError(u.err, other.err)
	default:
		return true
	}
}

// Hash is consistent with Equal: values are hashed structurally, following
// pointers and ignoring map order. Values hashstructure cannot walk, such
// as funcs and chans, hash by type only.
func (u Union[E, T]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_ = h.WriteByte(byte(u.state))

	switch u.state {
	case rop.StateSuccess:
		_, _ = fmt.Fprintf(&h, "%T|", u.value)
		if vh, err := hashstructure.Hash(u.value, hashstructure.FormatV2, nil); err == nil {
			_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, vh))
		}
	case rop.StateFailure:
		_, _ = fmt.Fprintf(&h, "%T|%s", u.err, u.err.Error())
	}
	return h.Sum64()
}

// String renders u as Success(v), Failure(err) or Empty.
func (u Union[E, T]) String() string {
	switch u.state {
	case rop.StateSuccess:
		return fmt.Sprintf("Success(%v)", u.value)
	case rop.StateFailure:
		return fmt.Sprintf("Failure(%v)", u.err)
	default:
		return "Empty"
	}
}

// sameError compares with == only when both dynamic values are comparable,
// interface fields included.
func sameError(a, b error) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
