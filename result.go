package eventkit

// ResultBroadcaster is a Broadcaster over callbacks that return a value.
// Delivery semantics are identical; the extra operations collect the values
// returned by each subscriber, in subscription order.
//
// The zero value is an empty broadcaster ready for use; NewResultBroadcaster
// additionally applies options. A ResultBroadcaster must not be copied after
// first use.
type ResultBroadcaster[T, R any] struct {
	slots slots[*ResultSubscriber[T, R]]
}

// NewResultBroadcaster creates an empty result broadcaster.
func NewResultBroadcaster[T, R any](opts ...Option) *ResultBroadcaster[T, R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	b := &ResultBroadcaster[T, R]{}
	b.slots.floor = o.capacity
	return b
}

// Subscribe appends s at the tail of the subscriber list. Subscribing nil is
// a no-op.
func (b *ResultBroadcaster[T, R]) Subscribe(s *ResultSubscriber[T, R]) {
	if s == nil {
		return
	}
	b.slots.subscribe(s)
}

// SubscribeFunc wraps fn in a new handle and subscribes it, returning the
// handle needed to unsubscribe later.
func (b *ResultBroadcaster[T, R]) SubscribeFunc(fn func(T) R) *ResultSubscriber[T, R] {
	s := NewResultSubscriber(fn)
	b.slots.subscribe(s)
	return s
}

// Unsubscribe removes the first subscription of s, reporting whether one was
// found.
func (b *ResultBroadcaster[T, R]) Unsubscribe(s *ResultSubscriber[T, R]) bool {
	if s == nil {
		return false
	}
	return b.slots.unsubscribe(s)
}

// Fire delivers v to every subscriber present when the call begins, in
// subscription order, discarding the returned values.
func (b *ResultBroadcaster[T, R]) Fire(v T) {
	sn := b.slots.acquire()
	if sn == nil {
		return
	}
	defer b.slots.release(sn)
	for _, s := range sn.view() {
		s.fn(v)
	}
}

// FireAndCollect delivers v to every subscriber and returns their results in
// call order. With no subscribers it returns nil without allocating.
func (b *ResultBroadcaster[T, R]) FireAndCollect(v T) []R {
	sn := b.slots.acquire()
	if sn == nil {
		return nil
	}
	defer b.slots.release(sn)
	out := make([]R, 0, sn.count)
	for _, s := range sn.view() {
		out = append(out, s.fn(v))
	}
	return out
}

// FireAndAppend delivers v to every subscriber, appending their results to
// dst in call order. When dst has capacity for the snapshot's results no
// allocation is performed, so a caller-managed buffer can be reused across
// fires.
func (b *ResultBroadcaster[T, R]) FireAndAppend(dst []R, v T) []R {
	sn := b.slots.acquire()
	if sn == nil {
		return dst
	}
	defer b.slots.release(sn)
	for _, s := range sn.view() {
		dst = append(dst, s.fn(v))
	}
	return dst
}

// Count reports the subscriber count in the currently published list. Under
// concurrent modification the value is advisory.
func (b *ResultBroadcaster[T, R]) Count() int {
	return b.slots.count()
}

// Stats reports snapshot lifecycle counters.
func (b *ResultBroadcaster[T, R]) Stats() Stats {
	return b.slots.stats()
}
