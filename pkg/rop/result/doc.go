// Package result provides Result[E, T], a container holding either a value
// of type T or a declared failure of type E (and, for suppliers that yield
// nothing, an explicit Empty state).
//
// Highlights:
// - Success/Failure/Empty: construct a Result
// - Of/TryOf/From: run a supplier once and capture its outcome
// - Map/FlatMap/Peek: compose without touching failures
// - Unwrap/MustUnwrap: return or panic with the stored failure
// - UnwrapOptional: like Unwrap, but an empty Result is option.None
//
// Only errors of type E are captured. Any other error a supplier returns is
// an unexpected fault and escapes Of unchanged; panics are never recovered.
package result
