package hub

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit"
	"github.com/dmitrymomot/eventkit/core/logger"
	"github.com/dmitrymomot/eventkit/pkg/async"
)

// Hub routes published values to callback subscribers grouped by topic.
// Each topic is backed by its own broadcaster, so publishing never holds the
// registry lock while subscriber callbacks run: concurrent publishes to the
// same or different topics proceed independently.
type Hub[T any] struct {
	mu     sync.RWMutex
	topics map[string]*eventkit.Broadcaster[T]
	closed bool

	log     *slog.Logger
	metrics func(topic string, subscribers int)
}

// New creates an empty hub.
//
// Example:
//
//	h := hub.New[OrderEvent](
//	    hub.WithLogger(log),
//	    hub.WithMetrics(func(topic string, n int) {
//	        gauge.WithLabelValues(topic).Set(float64(n))
//	    }),
//	)
func New[T any](opts ...Option) *Hub[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Hub[T]{
		topics:  make(map[string]*eventkit.Broadcaster[T]),
		log:     o.logger,
		metrics: o.metrics,
	}
}

// Subscribe registers fn as a subscriber of the given topic, creating the
// topic on first use. It returns a Subscription used to cancel the
// registration. Subscribing to an empty topic or a closed hub fails.
func (h *Hub[T]) Subscribe(topic string, fn func(T)) (*Subscription, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if fn == nil {
		return nil, ErrNilHandler
	}

	handle := eventkit.NewSubscriber(fn)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}

	b, ok := h.topics[topic]
	if !ok {
		b = eventkit.NewBroadcaster[T]()
		h.topics[topic] = b
	}
	b.Subscribe(handle)
	count := b.Count()
	h.mu.Unlock()

	h.notifyMetrics(topic, count)

	sub := &Subscription{
		id:    uuid.NewString(),
		topic: topic,
		cancel: func() bool {
			return h.unsubscribe(topic, handle)
		},
	}

	h.log.Debug("subscribed",
		logger.Component("hub"),
		logger.Topic(topic),
		logger.ID("subscription_id", sub.id),
		logger.Subscribers(count))

	return sub, nil
}

// unsubscribe removes a handle from a topic, pruning the topic when its last
// subscriber leaves.
func (h *Hub[T]) unsubscribe(topic string, handle *eventkit.Subscriber[T]) bool {
	h.mu.Lock()
	b, ok := h.topics[topic]
	if !ok {
		h.mu.Unlock()
		return false
	}

	removed := b.Unsubscribe(handle)
	count := b.Count()
	if removed && count == 0 {
		delete(h.topics, topic)
	}
	h.mu.Unlock()

	if !removed {
		return false
	}

	h.notifyMetrics(topic, count)
	h.log.Debug("unsubscribed",
		logger.Component("hub"),
		logger.Topic(topic),
		logger.Subscribers(count))
	return true
}

// Publish delivers a value to every subscriber of the topic, synchronously
// on the caller's goroutine. Publishing to a topic without subscribers is a
// no-op, not an error. A subscriber panic propagates to the caller and skips
// the remaining subscribers of that pass.
func (h *Hub[T]) Publish(topic string, v T) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrClosed
	}
	b := h.topics[topic]
	h.mu.RUnlock()

	if b == nil {
		// No subscribers, not an error.
		return nil
	}

	// Delivery runs outside the registry lock: the broadcaster snapshots its
	// subscriber set, so concurrent Subscribe and Unsubscribe never block on
	// a slow callback.
	b.Fire(v)
	return nil
}

// PublishAsync delivers a value on a separate goroutine and returns a future
// resolving with the Publish error. The context only gates the start of the
// delivery; once running, delivery completes regardless of cancellation.
func (h *Hub[T]) PublishAsync(ctx context.Context, topic string, v T) *async.Future {
	return async.Exec(ctx, v, func(ctx context.Context, v T) error {
		return h.Publish(topic, v)
	})
}

// Count returns the number of subscribers of a topic. Unknown topics count
// zero.
func (h *Hub[T]) Count(topic string) int {
	h.mu.RLock()
	b := h.topics[topic]
	h.mu.RUnlock()

	if b == nil {
		return 0
	}
	return b.Count()
}

// Topics returns the names of all topics with at least one subscriber, sorted.
func (h *Hub[T]) Topics() []string {
	h.mu.RLock()
	names := make([]string, 0, len(h.topics))
	for name := range h.topics {
		names = append(names, name)
	}
	h.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Close shuts the hub down and drops every topic. Subscriptions become
// inert: their Unsubscribe reports false. Closing an already closed hub
// returns ErrClosed.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.closed = true

	dropped := h.topics
	h.topics = nil
	h.mu.Unlock()

	for topic := range dropped {
		h.notifyMetrics(topic, 0)
	}

	h.log.Info("hub closed",
		logger.Component("hub"),
		logger.Count("topics_dropped", len(dropped)))
	return nil
}

func (h *Hub[T]) notifyMetrics(topic string, subscribers int) {
	if h.metrics != nil {
		h.metrics(topic, subscribers)
	}
}
