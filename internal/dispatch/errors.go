package dispatch

import "errors"

// Dispatch errors.
var (
	// ErrNoExecutor indicates no executor is registered for an event type.
	ErrNoExecutor = errors.New("dispatch: no executor for event type")

	// ErrExecutorPanic indicates an executor panicked during Execute.
	ErrExecutorPanic = errors.New("dispatch: executor panic")
)
