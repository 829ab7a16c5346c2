package store

import (
	"errors"
	"fmt"
)

var (
	ErrNilReactor   = errors.New("store: reactor cannot be nil")
	ErrNilChannel   = errors.New("store: action channel cannot be nil")
	ErrClosed       = errors.New("store: store is closed")
	ErrReactorPanic = errors.New("store: reactor panicked")
	ErrDrainTimeout = errors.New("store: timed out waiting for pipeline to stop")
)

// ReactorError reports a reactor failure for a single action.
// It is delivered on the error stream; the store keeps running.
type ReactorError struct {
	Action any
	Err    error
}

func (e *ReactorError) Error() string {
	return fmt.Sprintf("store: reactor failed on action %v: %v", e.Action, e.Err)
}

func (e *ReactorError) Unwrap() error {
	return e.Err
}

// IsReactorError reports whether err is, or wraps, a *ReactorError.
func IsReactorError(err error) bool {
	var e *ReactorError
	return errors.As(err, &e)
}
