package signal

import "github.com/dmitrymomot/eventkit"

// ResultSignal is a Signal over callbacks that return a value, mirroring
// eventkit.ResultBroadcaster for single-goroutine use.
//
// The zero value is an empty signal ready for use.
type ResultSignal[T, R any] struct {
	subs []*eventkit.ResultSubscriber[T, R]
}

// Subscribe appends sub at the tail. Subscribing nil is a no-op.
func (s *ResultSignal[T, R]) Subscribe(sub *eventkit.ResultSubscriber[T, R]) {
	if sub == nil {
		return
	}
	if s.subs == nil {
		s.subs = make([]*eventkit.ResultSubscriber[T, R], 0, 2)
	}
	s.subs = append(s.subs, sub)
}

// SubscribeFunc wraps fn in a new handle and subscribes it.
func (s *ResultSignal[T, R]) SubscribeFunc(fn func(T) R) *eventkit.ResultSubscriber[T, R] {
	sub := eventkit.NewResultSubscriber(fn)
	s.subs = append(s.subs, sub)
	return sub
}

// Unsubscribe removes the first subscription of sub, reporting whether one
// was found.
func (s *ResultSignal[T, R]) Unsubscribe(sub *eventkit.ResultSubscriber[T, R]) bool {
	next, ok := removeFirst(s.subs, sub)
	if ok {
		s.subs = next
	}
	return ok
}

// Fire invokes every subscriber present on entry, discarding results.
func (s *ResultSignal[T, R]) Fire(v T) {
	for _, sub := range s.subs {
		sub.Invoke(v)
	}
}

// FireAndCollect invokes every subscriber present on entry and returns their
// results in call order. With no subscribers it returns nil.
func (s *ResultSignal[T, R]) FireAndCollect(v T) []R {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]R, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub.Invoke(v))
	}
	return out
}

// FireAndAppend invokes every subscriber present on entry, appending results
// to dst in call order.
func (s *ResultSignal[T, R]) FireAndAppend(dst []R, v T) []R {
	for _, sub := range s.subs {
		dst = append(dst, sub.Invoke(v))
	}
	return dst
}

// Count reports the number of subscriptions.
func (s *ResultSignal[T, R]) Count() int {
	return len(s.subs)
}
