package async

import "context"

// Exec runs fn on a new goroutine and returns a Future resolving with its
// error. The close of the future's channel publishes the error, so readers
// never observe a partially written result.
//
// A context that is already cancelled short-circuits: fn is not called and
// the future resolves with the context error.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents useless work when the context is pre-cancelled.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// All waits for every future to complete and returns the first error
// encountered, in argument order.
func All(futures ...*Future) error {
	for _, future := range futures {
		if err := future.Await(); err != nil {
			return err
		}
	}
	return nil
}

// Any waits for the first future to complete and returns its index and error.
// It spawns one goroutine per future; the extra goroutines exit naturally
// when their futures finish.
func Any(futures ...*Future) (int, error) {
	if len(futures) == 0 {
		return -1, ErrNoFutures
	}

	type result struct {
		index int
		err   error
	}

	// Buffered so the winner can report even before Any reaches the receive.
	done := make(chan result, 1)

	for i, future := range futures {
		go func(index int, f *Future) {
			err := f.Await()
			select {
			case done <- result{index, err}:
			default:
				// Another future already won the race.
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.err
}
