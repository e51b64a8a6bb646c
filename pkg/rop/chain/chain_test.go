package chain

import (
	"errors"
	"io/fs"
	"strconv"
	"testing"

	"github.com/ib-77/result/pkg/rop/result"
)

var errNegative = errors.New("negative")

func nonNegative(v int) result.Result[error, int] {
	if v < 0 {
		return result.Failure[error, int](errNegative)
	}
	return result.Success[error](v)
}

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()

	out := Start(result.Success[error](5)).Result()
	if v, err := out.Unwrap(); err != nil || v != 5 {
		t.Fatalf("expected success with 5, got: val=%v, err=%v", v, err)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue[error](7).Result()
	if !out.IsSuccess() || out.MustUnwrap() != 7 {
		t.Fatalf("expected success with 7, got: %v", out)
	}
}

func TestFromSupplier_CapturesDeclaredFailure(t *testing.T) {
	t.Parallel()

	cause := &fs.PathError{Op: "open", Path: "missing", Err: fs.ErrNotExist}
	out := FromSupplier[*fs.PathError](func() ([]string, error) {
		return nil, cause
	}).Result()

	e, ok := out.Err()
	if !ok || e != cause {
		t.Fatalf("expected failure with original cause, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := Then(Start(result.Failure[error, int](errNegative)), func(v int) result.Result[error, string] {
		called = true
		return result.Success[error](strconv.Itoa(v))
	}).Result()

	if _, err := out.Unwrap(); err != errNegative {
		t.Fatalf("expected failure 'negative', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	out := Then(FromValue[error](3), nonNegative).Result()
	if out.MustUnwrap() != 3 {
		t.Fatalf("expected success with 3, got: %v", out)
	}

	out = Then(FromValue[error](-3), nonNegative).Result()
	if _, err := out.Unwrap(); err != errNegative {
		t.Fatalf("expected failure 'negative', got: %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	ok := ThenTry(FromValue[error]("42"), strconv.Atoi).Result()
	if ok.MustUnwrap() != 42 {
		t.Fatalf("expected success with 42, got: %v", ok)
	}

	bad := ThenTry(FromValue[error]("x"), strconv.Atoi).Result()
	var numErr *strconv.NumError
	if _, err := bad.Unwrap(); !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError failure, got: %v", bad)
	}
}

func TestThenTry_UnexpectedErrorPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for error that is not *fs.PathError")
		} else if _, ok := r.(*strconv.NumError); !ok {
			t.Fatalf("expected the original *strconv.NumError, got: %v", r)
		}
	}()

	ThenTry(FromValue[*fs.PathError]("x"), strconv.Atoi)
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(FromValue[error](5), func(v int) int { return v + 3 }).Result()
	if out.MustUnwrap() != 8 {
		t.Fatalf("expected success with 8, got: %v", out)
	}

	failed := Map(Start(result.Failure[error, int](errNegative)), func(v int) int { return v + 100 }).Result()
	if _, err := failed.Unwrap(); err != errNegative {
		t.Fatalf("expected failure 'negative', got: %v", failed)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()

	seen := 0
	out := FromValue[error](11).Ensure(func(v int) { seen = v }).Result()
	if seen != 11 || out.MustUnwrap() != 11 {
		t.Fatalf("expected side effect with 11, got: seen=%d, out=%v", seen, out)
	}

	called := false
	Start(result.Empty[error, int]()).Ensure(func(int) { called = true })
	Start(result.Failure[error, int](errNegative)).Ensure(func(int) { called = true })
	if called {
		t.Fatalf("Ensure should only run on success")
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	empty := Start(result.Empty[error, int]())
	failed := Start(result.Failure[error, int](errNegative))
	success := FromValue[error](1)

	if got := empty.Or(failed, success); got != success {
		t.Fatalf("expected the successful alternative, got: %v", got.Result())
	}
	if got := empty.Or(failed); got != failed {
		t.Fatalf("expected the failed alternative, got: %v", got.Result())
	}
	if got := empty.Or(Start(result.Empty[error, int]())); got != empty {
		t.Fatalf("expected the receiver when everything is empty, got: %v", got.Result())
	}
}

func TestFinally_SuccessFailureEmpty(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "val:" + strconv.Itoa(v) }
	onFailure := func(err error) string { return "err:" + err.Error() }
	onEmpty := func() string { return "empty" }

	cases := []struct {
		name string
		c    *Chain[error, int]
		want string
	}{
		{"success", FromValue[error](3), "val:3"},
		{"failure", Start(result.Failure[error, int](errNegative)), "err:negative"},
		{"empty", Start(result.Empty[error, int]()), "empty"},
	}

	for _, tc := range cases {
		if got := Finally(tc.c, onSuccess, onFailure, onEmpty); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
