package rop

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsNil reports whether i is absent: a nil interface, or a nil pointer,
// func, chan or unsafe pointer. Nil slices and maps are usable empty values
// and are not absent.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// RequireNonNil panics with an error wrapping ErrInvariantViolation when v
// is absent.
func RequireNonNil(v interface{}, what string) {
	if IsNil(v) {
		panic(errors.Wrapf(ErrInvariantViolation, "%s must not be nil", what))
	}
}
