package chain

import (
	"github.com/ib-77/result/pkg/rop/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[E error, T any] struct {
	result result.Result[E, T]
}

// Start creates a new chain from a result.Result
func Start[E error, T any](r result.Result[E, T]) *Chain[E, T] {
	return &Chain[E, T]{
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E error, T any](value T) *Chain[E, T] {
	return &Chain[E, T]{
		result: result.Success[E](value),
	}
}

// FromSupplier creates a new chain from the outcome of supplier, see result.Of
func FromSupplier[E error, T any](supplier func() (T, error)) *Chain[E, T] {
	return &Chain[E, T]{
		result: result.Of[E](supplier),
	}
}

// Result returns the underlying result.Result
func (c *Chain[E, T]) Result() result.Result[E, T] {
	return c.result
}

// Then chains a function that returns result.Result[E, U]
func Then[E error, T, U any](c *Chain[E, T], onSuccess func(T) result.Result[E, U]) *Chain[E, U] {
	return &Chain[E, U]{
		result: result.FlatMap(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); errors that are not E
// panic unchanged, as with result.Of
func ThenTry[E error, T, U any](c *Chain[E, T], tryOnSuccess func(T) (U, error)) *Chain[E, U] {
	return Then(c, func(t T) result.Result[E, U] {
		return result.Of[E](func() (U, error) {
			return tryOnSuccess(t)
		})
	})
}

// Map chains a pure transformation function
func Map[E error, T, U any](c *Chain[E, T], onSuccess func(T) U) *Chain[E, U] {
	return &Chain[E, U]{
		result: result.Map(c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[E, T]) Ensure(onSuccess func(T)) *Chain[E, T] {
	return &Chain[E, T]{
		result: c.result.Peek(onSuccess),
	}
}

// Or returns the first successful chain among c and alternatives. Without a
// success it returns the first failed one, and c itself when all are empty.
func (c *Chain[E, T]) Or(alternatives ...*Chain[E, T]) *Chain[E, T] {
	var failed *Chain[E, T]
	for _, ch := range append([]*Chain[E, T]{c}, alternatives...) {
		if ch.result.IsSuccess() {
			return ch
		}
		if failed == nil && ch.result.IsFailure() {
			failed = ch
		}
	}

	if failed != nil {
		return failed
	}
	return c
}

// Finally collapses the chain into a final value using result.Fold
func Finally[E error, T, R any](c *Chain[E, T],
	onSuccess func(T) R, onFailure func(E) R, onEmpty func() R) R {
	return result.Fold(c.result, onSuccess, onFailure, onEmpty)
}
