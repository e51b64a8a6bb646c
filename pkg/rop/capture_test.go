package rop

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faultError struct{}

func (faultError) Error() string { return "fault" }
func (faultError) RuntimeError() {}

func TestCapture_DeclaredType(t *testing.T) {
	t.Parallel()

	cause := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	e, fault := Capture[*fs.PathError](cause)
	require.NoError(t, fault)
	assert.Same(t, cause, e)
}

func TestCapture_WrappedDeclaredType(t *testing.T) {
	t.Parallel()

	cause := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	e, fault := Capture[*fs.PathError](fmt.Errorf("loading: %w", cause))
	require.NoError(t, fault)
	assert.Same(t, cause, e)
}

func TestCapture_InterfaceType(t *testing.T) {
	t.Parallel()

	cause := errors.New("any")
	e, fault := Capture[error](cause)
	require.NoError(t, fault)
	assert.Equal(t, cause, e)
}

func TestCapture_UnexpectedType(t *testing.T) {
	t.Parallel()

	cause := errors.New("not a path error")
	e, fault := Capture[*fs.PathError](cause)
	assert.Nil(t, e)
	assert.Equal(t, cause, fault)
}

func TestCapture_RuntimeErrorIsAlwaysFault(t *testing.T) {
	t.Parallel()

	_, fault := Capture[error](faultError{})
	assert.Equal(t, faultError{}, fault)

	wrapped := fmt.Errorf("wrapped: %w", faultError{})
	_, fault = Capture[*fs.PathError](wrapped)
	assert.Same(t, wrapped, fault)

	assert.False(t, IsDeclared[error](faultError{}))
	assert.False(t, IsDeclared[*fs.PathError](wrapped))
	assert.True(t, IsDeclared[error](errors.New("plain")))
	assert.False(t, IsDeclared[error](nil))
}

// declaredError carries an arbitrary cause, including a runtime fault.
type declaredError struct {
	cause error
}

func (e *declaredError) Error() string { return "declared: " + e.cause.Error() }
func (e *declaredError) Unwrap() error { return e.cause }

func TestCapture_DeclaredTypeWrappingRuntimeError(t *testing.T) {
	t.Parallel()

	cause := &declaredError{cause: faultError{}}
	e, fault := Capture[*declaredError](cause)
	require.NoError(t, fault)
	assert.Same(t, cause, e)

	// the top-level kind decides, so E = error keeps a wrapped runtime fault
	wrapped := fmt.Errorf("wrapped: %w", faultError{})
	got, fault := Capture[error](wrapped)
	require.NoError(t, fault)
	assert.Same(t, wrapped, got)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var f func()
	var ch chan int
	var err error
	var s []int
	var m map[string]int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(ch))
	assert.True(t, IsNil(err))
	assert.False(t, IsNil(s))
	assert.False(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}

func TestRequireNonNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { RequireNonNil(1, "value") })

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrInvariantViolation)
		assert.Contains(t, err.Error(), "value must not be nil")
	}()
	RequireNonNil((*int)(nil), "value")
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Empty", StateEmpty.String())
	assert.Equal(t, "Success", StateSuccess.String())
	assert.Equal(t, "Failure", StateFailure.String())
	assert.Equal(t, "Unknown", State(42).String())
}

func TestNoSuchValue(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NoSuchValue(), ErrNoSuchValue)
}
