// Package dispatch provides asynchronous fan-out of values to subscribers
// through a buffered queue and a worker pool. Producers enqueue values
// without running subscriber callbacks on their own goroutine; workers drain
// the queue and broadcast each value to the current subscriber set.
//
// # Core Components
//
// Dispatcher owns the queue, the workers, and an internal broadcaster.
// Subscribers are registered with Subscribe or SubscribeFunc and removed with
// Unsubscribe, using the same subscriber handles as the eventkit root package.
//
// Config carries queue size, worker count, and shutdown timeout sourced from
// environment variables; NewFromEnv builds a dispatcher straight from the
// environment.
//
// # Basic Usage
//
// Create a dispatcher, register subscribers, start it, and dispatch values:
//
//	import (
//		"context"
//		"log/slog"
//		"os"
//
//		"github.com/dmitrymomot/eventkit/core/dispatch"
//	)
//
//	type OrderPlaced struct {
//		OrderID string
//		Total   int
//	}
//
//	func main() {
//		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//
//		d := dispatch.NewDispatcher[OrderPlaced](
//			dispatch.WithQueueSize(256),
//			dispatch.WithWorkers(1),
//			dispatch.WithLogger(log),
//		)
//
//		d.SubscribeFunc(func(evt OrderPlaced) {
//			log.Info("order placed", "order_id", evt.OrderID, "total", evt.Total)
//		})
//
//		ctx, cancel := context.WithCancel(context.Background())
//		defer cancel()
//
//		go func() {
//			if err := d.Start(ctx); err != nil {
//				log.Error("dispatcher exited", "error", err)
//			}
//		}()
//
//		if err := d.Dispatch(ctx, OrderPlaced{OrderID: "ord_123", Total: 4990}); err != nil {
//			log.Error("dispatch failed", "error", err)
//		}
//
//		// Graceful shutdown drains the queue first
//		cancel()
//		if err := d.Stop(); err != nil {
//			log.Error("shutdown failed", "error", err)
//		}
//	}
//
// # Backpressure
//
// Dispatch blocks while the queue is full and honors context cancellation.
// TryDispatch never blocks and returns ErrQueueFull instead:
//
//	if err := d.TryDispatch(evt); err != nil {
//		switch {
//		case errors.Is(err, dispatch.ErrQueueFull):
//			metrics.IncrementDropped()
//		case errors.Is(err, dispatch.ErrNotRunning):
//			return err
//		}
//	}
//
// # Ordering
//
// With the default single worker, values are delivered in dispatch order.
// Raising the worker count trades that ordering for throughput: values are
// still each delivered once, but their relative order across workers is
// unspecified.
//
// # Panic Isolation
//
// A panicking subscriber skips the remaining subscribers for that value
// only. The worker recovers, records the panic in Stats, logs it with a
// stack trace, and continues with the next queued value. This differs from
// the synchronous eventkit.Broadcaster, where panics propagate to the caller
// of Fire.
//
// # Configuration from Environment
//
// Load dispatcher settings with core/config, either explicitly or through
// NewFromEnv:
//
//	// DISPATCH_QUEUE_SIZE=4096 DISPATCH_WORKERS=4 DISPATCH_SHUTDOWN_TIMEOUT=10s
//	d, err := dispatch.NewFromEnv[OrderPlaced](dispatch.WithLogger(log))
//	if err != nil {
//		log.Error("invalid dispatcher config", "error", err)
//		os.Exit(1)
//	}
//
// # Graceful Shutdown with errgroup
//
// Coordinate the dispatcher lifecycle with errgroup for clean shutdown:
//
//	g, ctx := errgroup.WithContext(context.Background())
//
//	g.Go(d.Run(ctx))
//
//	g.Go(func() error {
//		return httpServer.ListenAndServe()
//	})
//
//	if err := g.Wait(); err != nil {
//		log.Error("service error", "error", err)
//	}
//
// # Observability and Health Checks
//
// Monitor queue throughput and dispatcher health:
//
//	stats := d.Stats()
//	log.Info("dispatcher stats",
//		"queued", stats.Queued,
//		"delivered", stats.Delivered,
//		"dropped", stats.Dropped,
//		"panics", stats.Panics,
//		"is_running", stats.IsRunning)
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := d.Healthcheck(r.Context()); err != nil {
//			w.WriteHeader(http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// # Thread Safety
//
// All methods are safe for concurrent use. Dispatch and TryDispatch can be
// called from any number of producer goroutines, and subscribers can be
// added or removed while the dispatcher is running.
package dispatch
