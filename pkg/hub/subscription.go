package hub

import "sync/atomic"

// Subscription represents one registered callback on one topic.
// It is returned by Hub.Subscribe and is the only way to cancel the
// registration.
type Subscription struct {
	id     string
	topic  string
	cancel func() bool
	done   atomic.Bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Topic returns the topic this subscription is attached to.
func (s *Subscription) Topic() string {
	return s.topic
}

// Unsubscribe removes the callback from its topic and reports whether the
// registration was still active. It is idempotent: only the first call can
// return true. When the last subscriber leaves a topic, the topic is pruned
// from the hub.
func (s *Subscription) Unsubscribe() bool {
	if s.done.Swap(true) {
		return false
	}
	return s.cancel()
}
