// Package eventkit provides a lock-free concurrent broadcast primitive for
// in-process event delivery, together with a toolkit of packages built on
// top of it: a single-goroutine signal, an observable list, a topic hub, and
// an asynchronous dispatch pump.
//
// # Architecture
//
// The root package implements the core primitive. A Broadcaster owns an
// atomic pointer to an immutable snapshot of its subscriber list. Firing
// goroutines take a counted reference on the snapshot and iterate it with no
// lock held; subscribing and unsubscribing goroutines build a replacement
// snapshot and publish it with a compare-and-swap, retrying on contention. A
// single-slot recycle cache reuses retired buffers so steady-state
// subscription churn performs no allocations.
//
// This layout favors the workload where firing is hot and subscription
// changes are rare: Fire never blocks on subscription activity, and
// subscription changes never block a fire already in flight.
//
// # Usage
//
// Basic broadcasting:
//
//	bus := eventkit.NewBroadcaster[string]()
//
//	sub := bus.SubscribeFunc(func(msg string) {
//		fmt.Println("received:", msg)
//	})
//
//	bus.Fire("hello")
//	bus.Unsubscribe(sub)
//
// Collecting results from subscribers:
//
//	poll := eventkit.NewResultBroadcaster[string, int]()
//	poll.SubscribeFunc(func(q string) int { return 1 })
//	poll.SubscribeFunc(func(q string) int { return 2 })
//
//	votes := poll.FireAndCollect("ready?") // [1 2], in subscription order
//
// # Delivery Contract
//
// Fire invokes every subscriber present in the list at the moment the call
// begins, in subscription order. Subscribers added or removed while a fire
// is in flight take effect for later fires; the running pass is never
// disturbed. Between a Fire and a concurrent Subscribe or Unsubscribe no
// ordering is promised, either outcome is valid.
//
// Subscriber identity is handle identity. Func values are not comparable in
// Go, so Subscribe and Unsubscribe work with *Subscriber handles; the same
// handle subscribed twice is delivered twice and needs two unsubscribes.
//
// # Failure Semantics
//
// No operation returns an error. Unsubscribing an absent handle reports
// false. A subscriber that panics during a fire aborts that pass, the
// remaining subscribers are skipped, and the panic propagates to the caller
// of Fire; the broadcaster itself stays consistent and usable. The
// asynchronous pump in core/dispatch recovers panics instead, since a worker
// goroutine has no caller to propagate to.
//
// # Performance Characteristics
//
// Fire is lock-free and allocation-free. Subscribe and Unsubscribe copy the
// subscriber list into a buffer drawn from the recycle slot when possible;
// buffer capacities grow in powers of two with a floor of four. Stats
// exposes the allocation, recycle, and discard counters, which also back the
// leak assertions in the package tests.
//
// # Toolkit Packages
//
//	github.com/dmitrymomot/eventkit/core/signal     - single-goroutine signal with the same surface
//	github.com/dmitrymomot/eventkit/core/observable - list emitting insert/remove/replace notifications
//	github.com/dmitrymomot/eventkit/core/dispatch   - buffered asynchronous delivery pump
//	github.com/dmitrymomot/eventkit/core/config     - environment-based configuration loading
//	github.com/dmitrymomot/eventkit/core/logger     - slog attribute helpers
//	github.com/dmitrymomot/eventkit/pkg/hub         - topic-keyed broadcaster registry
//	github.com/dmitrymomot/eventkit/pkg/async       - future-style asynchronous execution
//	github.com/dmitrymomot/eventkit/pkg/lexical     - shortest round-trip float formatting
package eventkit
