package async

import "errors"

var (
	// ErrTimeout is returned by AwaitTimeout when the timeout elapses before completion.
	ErrTimeout = errors.New("await timed out")

	// ErrNoFutures is returned by Any when called with no futures.
	ErrNoFutures = errors.New("no futures to wait for")
)
