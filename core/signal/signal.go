package signal

import (
	"slices"

	"github.com/dmitrymomot/eventkit"
)

// Signal is the single-goroutine counterpart of eventkit.Broadcaster: the
// same subscribe, unsubscribe, and fire contract with no atomic traffic at
// all. Handles are the root package's, so a subscriber can move between a
// Signal and a Broadcaster unchanged.
//
// A Signal must be confined to one goroutine. Reentrancy is fine: callbacks
// may subscribe and unsubscribe on the signal that is firing them, with the
// change taking effect on the next fire.
//
// The zero value is an empty signal ready for use.
type Signal[T any] struct {
	subs []*eventkit.Subscriber[T]
}

// Subscribe appends sub at the tail. Subscribing nil is a no-op; the same
// handle may be subscribed more than once.
func (s *Signal[T]) Subscribe(sub *eventkit.Subscriber[T]) {
	if sub == nil {
		return
	}
	if s.subs == nil {
		// Most signals carry a handful of subscribers, start small.
		s.subs = make([]*eventkit.Subscriber[T], 0, 2)
	}
	s.subs = append(s.subs, sub)
}

// SubscribeFunc wraps fn in a new handle and subscribes it.
func (s *Signal[T]) SubscribeFunc(fn func(T)) *eventkit.Subscriber[T] {
	sub := eventkit.NewSubscriber(fn)
	s.subs = append(s.subs, sub)
	return sub
}

// Unsubscribe removes the first subscription of sub, reporting whether one
// was found. The list is rebuilt rather than compacted in place, so a fire
// pass in flight keeps the list it captured.
func (s *Signal[T]) Unsubscribe(sub *eventkit.Subscriber[T]) bool {
	next, ok := removeFirst(s.subs, sub)
	if ok {
		s.subs = next
	}
	return ok
}

// Fire invokes every subscriber present on entry, in subscription order.
// Subscribers added by a callback are not seen by the running pass.
func (s *Signal[T]) Fire(v T) {
	for _, sub := range s.subs {
		sub.Invoke(v)
	}
}

// Count reports the number of subscriptions.
func (s *Signal[T]) Count() int {
	return len(s.subs)
}

// removeFirst returns list without its first element equal to e. The
// original slice is never mutated.
func removeFirst[E comparable](list []E, e E) ([]E, bool) {
	at := slices.Index(list, e)
	if at < 0 {
		return list, false
	}
	next := make([]E, 0, len(list)-1)
	next = append(next, list[:at]...)
	next = append(next, list[at+1:]...)
	return next, true
}
