package dispatch

import "errors"

var (
	// ErrQueueFull is returned by TryDispatch when the queue has no free slot.
	ErrQueueFull = errors.New("dispatch queue is full")

	// ErrAlreadyRunning is returned when attempting to start a dispatcher that is already running.
	ErrAlreadyRunning = errors.New("dispatcher already running")

	// ErrNotRunning is returned when dispatching to or stopping a dispatcher that is not running.
	ErrNotRunning = errors.New("dispatcher not running")

	// ErrHealthcheckFailed is returned by Healthcheck together with the underlying cause.
	ErrHealthcheckFailed = errors.New("dispatcher healthcheck failed")
)
