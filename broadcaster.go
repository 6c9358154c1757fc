package eventkit

// Broadcaster delivers values to a dynamic set of subscribers from any
// number of goroutines, with no locks on any path. Firing goroutines work
// against an immutable snapshot of the subscriber list; subscribing and
// unsubscribing goroutines publish a replacement snapshot through an
// optimistic compare-and-swap loop. Neither side ever waits on the other.
//
// The zero value is an empty broadcaster ready for use; NewBroadcaster
// additionally applies options. A Broadcaster must not be copied after first
// use.
type Broadcaster[T any] struct {
	slots slots[*Subscriber[T]]
}

// Option configures a broadcaster at construction.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity presizes subscriber buffers for at least n entries, avoiding
// growth reallocations when the eventual subscriber count is known up front.
// Values below one are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster[T any](opts ...Option) *Broadcaster[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	b := &Broadcaster[T]{}
	b.slots.floor = o.capacity
	return b
}

// Subscribe appends s at the tail of the subscriber list. It never fails;
// under contention it retries until its publication wins. Fire calls already
// in flight keep the list they started with and are unaffected. Subscribing
// nil is a no-op.
func (b *Broadcaster[T]) Subscribe(s *Subscriber[T]) {
	if s == nil {
		return
	}
	b.slots.subscribe(s)
}

// SubscribeFunc wraps fn in a new handle and subscribes it, returning the
// handle needed to unsubscribe later.
func (b *Broadcaster[T]) SubscribeFunc(fn func(T)) *Subscriber[T] {
	s := NewSubscriber(fn)
	b.slots.subscribe(s)
	return s
}

// Unsubscribe removes the first subscription of s, reporting whether one was
// found. Removing an absent handle is not an error. Fire calls already in
// flight keep delivering to s for the remainder of their pass.
func (b *Broadcaster[T]) Unsubscribe(s *Subscriber[T]) bool {
	if s == nil {
		return false
	}
	return b.slots.unsubscribe(s)
}

// Fire delivers v to every subscriber present when the call begins, in
// subscription order. With no subscribers it returns immediately. A
// panicking subscriber aborts the pass, skipping the remaining subscribers,
// and the panic reaches Fire's caller; the snapshot reference is released
// either way.
func (b *Broadcaster[T]) Fire(v T) {
	sn := b.slots.acquire()
	if sn == nil {
		return
	}
	defer b.slots.release(sn)
	for _, s := range sn.view() {
		s.fn(v)
	}
}

// Count reports the subscriber count in the currently published list. Under
// concurrent modification the value is advisory and may be stale by the time
// it is returned.
func (b *Broadcaster[T]) Count() int {
	return b.slots.count()
}

// Stats reports snapshot lifecycle counters.
func (b *Broadcaster[T]) Stats() Stats {
	return b.slots.stats()
}
