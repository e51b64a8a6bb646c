// Package option contains Value, an optional value that is either Some or None.
package option

import (
	"fmt"
	"reflect"

	"github.com/ib-77/result/pkg/rop"
)

// Value is either Some value or None. The zero value is None.
type Value[T any] struct {
	indirect *T
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some returns a Value holding v. When v is a nil pointer, func, chan or
// interface, Some returns None.
func Some[T any](v T) Value[T] {
	if rop.IsNil(v) {
		return None[T]()
	}
	return Value[T]{indirect: &v}
}

// FromPtr returns Some(*p) or None when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome returns whether a value is present.
func (v Value[T]) IsSome() bool {
	return v.indirect != nil
}

// IsNone returns whether the value is missing.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// Get returns the value and whether it was present.
func (v Value[T]) Get() (T, bool) {
	if v.indirect == nil {
		var zero T
		return zero, false
	}
	return *v.indirect, true
}

// Unwrap returns the value or panics when the value is missing.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic("option: Unwrap called on None")
	}
	return *v.indirect
}

// UnwrapOr returns the value or def when the value is missing.
func (v Value[T]) UnwrapOr(def T) T {
	if v.indirect == nil {
		return def
	}
	return *v.indirect
}

// Equal reports whether both are None or both hold deeply equal values.
func (v Value[T]) Equal(other Value[T]) bool {
	if v.indirect == nil || other.indirect == nil {
		return v.indirect == nil && other.indirect == nil
	}
	return reflect.DeepEqual(*v.indirect, *other.indirect)
}

func (v Value[T]) String() string {
	if v.indirect == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", *v.indirect)
}
