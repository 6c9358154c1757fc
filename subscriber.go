package eventkit

// Subscriber is a comparable handle around a callback. Go func values cannot
// be compared, so the handle's pointer identity is what Unsubscribe matches
// on: keep the handle returned by NewSubscriber or SubscribeFunc to remove
// that exact subscription later. Subscribing the same handle twice creates
// two independent entries, each needing its own Unsubscribe.
//
// A handle never owns the state its callback captures. Unsubscribe before
// tearing down anything the callback reaches; the broadcaster does not track
// captured lifetimes.
type Subscriber[T any] struct {
	fn func(T)
}

// NewSubscriber wraps fn in a reusable handle. Panics on a nil fn.
func NewSubscriber[T any](fn func(T)) *Subscriber[T] {
	if fn == nil {
		panic("eventkit: nil subscriber func")
	}
	return &Subscriber[T]{fn: fn}
}

// Invoke calls the wrapped callback directly, outside any broadcast.
func (s *Subscriber[T]) Invoke(v T) {
	s.fn(v)
}

// ResultSubscriber is the collecting counterpart of Subscriber, wrapping a
// callback that returns a value.
type ResultSubscriber[T, R any] struct {
	fn func(T) R
}

// NewResultSubscriber wraps fn in a reusable handle. Panics on a nil fn.
func NewResultSubscriber[T, R any](fn func(T) R) *ResultSubscriber[T, R] {
	if fn == nil {
		panic("eventkit: nil subscriber func")
	}
	return &ResultSubscriber[T, R]{fn: fn}
}

// Invoke calls the wrapped callback directly, outside any broadcast.
func (s *ResultSubscriber[T, R]) Invoke(v T) R {
	return s.fn(v)
}
