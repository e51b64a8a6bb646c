// Package optresult provides OptionalResult[E, T] for operations that may
// legitimately produce nothing. It is a Result whose Empty state is a
// first-class outcome: there is no plain Unwrap, only UnwrapOptional.
package optresult
