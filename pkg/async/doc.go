// Package async provides error-only futures for fire-and-forget work with
// Go generics.
//
// The package implements a small Future pattern for operations whose only
// result is an error, with timeout support and coordination helpers for
// waiting on several operations at once.
//
// # Core Types
//
// Future represents the outcome of an asynchronous operation. It provides
// methods to wait for completion (Await), wait with a timeout (AwaitTimeout),
// and check status without blocking (Done).
//
// # Usage
//
// Run a delivery asynchronously and collect the error later:
//
//	future := async.Exec(ctx, event, func(ctx context.Context, evt OrderPlaced) error {
//		return hub.Publish("orders.placed", evt)
//	})
//
//	// Do other work...
//
//	if err := future.Await(); err != nil {
//		log.Printf("publish failed: %v", err)
//	}
//
// Using a timeout:
//
//	if err := future.AwaitTimeout(50 * time.Millisecond); errors.Is(err, async.ErrTimeout) {
//		log.Println("delivery is taking too long")
//	}
//
// # Coordination
//
// All waits for every future and returns the first error in argument order:
//
//	err := async.All(
//		async.Exec(ctx, a, deliver),
//		async.Exec(ctx, b, deliver),
//		async.Exec(ctx, c, deliver),
//	)
//
// Any returns as soon as the first future completes, with its index:
//
//	index, err := async.Any(primary, fallback)
//
// # Error Handling
//
// The package defines two errors:
//   - ErrTimeout: returned when AwaitTimeout exceeds its duration
//   - ErrNoFutures: returned when Any is called with no futures
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. The close of the future's
// internal channel publishes the result, so concurrent Await calls all
// observe the same error.
//
// # Context Support
//
// A context that is already cancelled when Exec is called short-circuits the
// future with the context error without running the function. Cancellation
// during execution is the function's own responsibility to observe.
package async
