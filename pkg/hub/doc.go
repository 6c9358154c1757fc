// Package hub provides topic-based routing of values to callback
// subscribers. It groups subscribers by string topic names and delivers each
// published value to every subscriber of its topic.
//
// # Core Concepts
//
// Hub owns a registry mapping topic names to broadcasters. Topics come into
// existence when their first subscriber arrives and vanish when their last
// subscriber leaves; publishing to an unknown topic is a silent no-op.
//
// Subscription represents one registered callback. It carries a unique ID
// and cancels the registration through Unsubscribe.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/eventkit/pkg/hub"
//
//	type Notification struct {
//		UserID string
//		Text   string
//	}
//
//	h := hub.New[Notification]()
//	defer h.Close()
//
//	sub, err := h.Subscribe("user.42", func(n Notification) {
//		render(n.Text)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sub.Unsubscribe()
//
//	if err := h.Publish("user.42", Notification{UserID: "42", Text: "hello"}); err != nil {
//		log.Printf("publish failed: %v", err)
//	}
//
// # Synchronous and Asynchronous Publishing
//
// Publish runs subscriber callbacks on the caller's goroutine and returns
// when the last one finishes. PublishAsync moves delivery onto its own
// goroutine and hands back a future:
//
//	future := h.PublishAsync(ctx, "user.42", n)
//	// ...
//	if err := future.Await(); err != nil {
//		log.Printf("async publish failed: %v", err)
//	}
//
// # Metrics
//
// Track per-topic subscriber counts with a metrics callback:
//
//	h := hub.New[Notification](
//		hub.WithMetrics(func(topic string, n int) {
//			subscriberGauge.WithLabelValues(topic).Set(float64(n))
//		}),
//	)
//
// The callback fires after every change, including the drop to zero when a
// topic is pruned or the hub closes.
//
// # Concurrency
//
// All methods are safe for concurrent use. The registry lock covers only
// map bookkeeping; deliveries run against immutable subscriber snapshots, so
// a slow callback on one topic never blocks subscribing, unsubscribing, or
// publishing on another.
package hub
