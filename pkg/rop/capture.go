package rop

import (
	"runtime"

	"github.com/pkg/errors"
)

// Capture classifies err against the declared failure type E.
//
// Only the kind of err itself is checked first: a runtime.Error is a
// programming fault whatever E is, and an err that is an E is returned
// unchanged as (e, nil), whatever it wraps. Otherwise the chain is searched:
// a wrapped runtime.Error makes err a fault, and a wrapped E is returned as
// the declared failure. Faults come back unchanged as the second value with
// a zero E.
//
// Capture must not be called with a nil err.
func Capture[E error](err error) (E, error) {
	var zero E

	if _, ok := err.(runtime.Error); ok {
		return zero, err
	}

	if e, ok := err.(E); ok && !IsNil(e) {
		return e, nil
	}

	var re runtime.Error
	if errors.As(err, &re) {
		return zero, err
	}

	var e E
	if errors.As(err, &e) && !IsNil(e) {
		return e, nil
	}
	return zero, err
}

// IsDeclared reports whether Capture would keep err as a declared failure.
func IsDeclared[E error](err error) bool {
	if IsNil(err) {
		return false
	}
	_, fault := Capture[E](err)
	return fault == nil
}
