package async

import "time"

// Future represents the outcome of an asynchronous operation that only
// reports an error. The zero value is not usable; futures are created by Exec.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the operation completes and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitTimeout blocks until the operation completes or the timeout elapses.
// It returns ErrTimeout if the timeout fires first; the operation itself
// keeps running and can still be awaited later.
func (f *Future) AwaitTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// Done reports whether the operation has completed, without blocking.
func (f *Future) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
