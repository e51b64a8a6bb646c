// Package chain provides a fluent wrapper around result.Result for building
// synchronous Railway-Oriented chains.
//
// It composes FlatMap, Map, Peek and Fold behind a convenient Chain type so
// a pipeline reads top to bottom without branching on each step.
//
// Key operations:
// - Start/FromValue/FromSupplier: begin a chain from a Result, a value or a supplier
// - Then: switch to a new Result[E, U] via a function
// - ThenTry: call a function (U, error) and capture errors of type E
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Or: fall back to alternative chains
// - Finally: collapse the chain into a final value via handlers
package chain
