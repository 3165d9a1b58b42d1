package future

import (
	"errors"
	"fmt"
)

var (
	// ErrNoState is returned when a Promise, Future, or SharedFuture is
	// used after it has been consumed, closed, or left as its zero value,
	// so there's no state cell behind it anymore.
	ErrNoState = errors.New("future: no associated state")

	// ErrPromiseAlreadySatisfied is returned from the second and any later
	// attempt to complete the same Promise.
	ErrPromiseAlreadySatisfied = errors.New("future: promise already satisfied")

	// ErrFutureAlreadyRetrieved is returned from the second and any later
	// call to the Future method of the same Promise.
	ErrFutureAlreadyRetrieved = errors.New("future: future already retrieved")

	// ErrBrokenPromise is the outcome installed by Close on a Promise that
	// was never completed, so waiters and continuations are released with
	// an error instead of blocking forever.
	ErrBrokenPromise = errors.New("future: broken promise")
)

const (
	nilCallbackPanicMsg = "future: the provided callback is nil"
	nilErrorPanicMsg    = "future: SetError called with a nil error"
)

// PanicError wraps a value recovered from a panic inside a continuation
// callback, after it has been redirected into the continuation's Future.
type PanicError struct {
	v any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: continuation panicked: %v", e.v)
}

// V returns the value the callback panicked with.
func (e *PanicError) V() any {
	return e.v
}

func newPanicError(v any) *PanicError {
	return &PanicError{v: v}
}
