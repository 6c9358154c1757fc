package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eventkit"
	"github.com/dmitrymomot/eventkit/core/config"
	"github.com/dmitrymomot/eventkit/core/logger"
)

// Dispatcher decouples producers from subscribers with a buffered queue.
// Producers enqueue values with Dispatch or TryDispatch; worker goroutines
// drain the queue and fan each value out to the subscribers of an internal
// broadcaster. Subscribers therefore never run on the producer's goroutine.
type Dispatcher[T any] struct {
	bus   eventkit.Broadcaster[T]
	queue chan T

	workers         int
	shutdownTimeout time.Duration
	logger          *slog.Logger
	id              string

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	queued         atomic.Int64
	delivered      atomic.Int64
	dropped        atomic.Int64
	panics         atomic.Int64
	lastActivityAt atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging.
type Stats struct {
	// Queued is the total number of values accepted into the queue.
	Queued int64
	// Delivered is the number of values fanned out to subscribers.
	Delivered int64
	// Dropped is the number of values rejected because the queue was full.
	Dropped int64
	// Panics is the number of recovered subscriber panics.
	Panics int64
	// Workers is the configured worker count.
	Workers int
	// IsRunning reports whether the dispatcher has been started and not stopped.
	IsRunning bool
	// LastActivityAt is the time of the most recent delivery.
	LastActivityAt time.Time
}

// NewDispatcher creates a new dispatcher with the given options.
//
// Example:
//
//	d := dispatch.NewDispatcher[OrderEvent](
//	    dispatch.WithQueueSize(256),
//	    dispatch.WithWorkers(4),
//	)
func NewDispatcher[T any](opts ...Option) *Dispatcher[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Dispatcher[T]{
		queue:           make(chan T, o.queueSize),
		workers:         o.workers,
		shutdownTimeout: o.shutdownTimeout,
		logger:          o.logger,
		id:              uuid.NewString(),
	}
}

// NewFromEnv creates a dispatcher configured from environment variables.
// See Config for the recognized variables. Explicit options are applied on
// top of the environment configuration.
func NewFromEnv[T any](opts ...Option) (*Dispatcher[T], error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewDispatcher[T](append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// Subscribe registers a subscriber handle with the internal broadcaster.
// A nil handle is ignored. Subscribing is allowed before Start and while
// the dispatcher is running.
func (d *Dispatcher[T]) Subscribe(s *eventkit.Subscriber[T]) {
	d.bus.Subscribe(s)
}

// SubscribeFunc wraps fn in a new subscriber handle, registers it, and
// returns the handle for later removal.
func (d *Dispatcher[T]) SubscribeFunc(fn func(T)) *eventkit.Subscriber[T] {
	return d.bus.SubscribeFunc(fn)
}

// Unsubscribe removes a previously registered handle. It reports whether the
// handle was present.
func (d *Dispatcher[T]) Unsubscribe(s *eventkit.Subscriber[T]) bool {
	return d.bus.Unsubscribe(s)
}

// Subscribers returns the current number of registered subscribers.
func (d *Dispatcher[T]) Subscribers() int {
	return d.bus.Count()
}

// Dispatch enqueues a value for asynchronous delivery, blocking while the
// queue is full. It returns ErrNotRunning if the dispatcher is stopped, or
// the context error if ctx is cancelled while waiting.
func (d *Dispatcher[T]) Dispatch(ctx context.Context, v T) error {
	d.mu.RLock()
	runCtx := d.ctx
	running := d.cancel != nil
	d.mu.RUnlock()

	if !running {
		return ErrNotRunning
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-runCtx.Done():
		return ErrNotRunning
	case d.queue <- v:
		d.queued.Add(1)
		return nil
	}
}

// TryDispatch enqueues a value without blocking. It returns ErrQueueFull if
// the queue has no free slot and ErrNotRunning if the dispatcher is stopped.
func (d *Dispatcher[T]) TryDispatch(v T) error {
	d.mu.RLock()
	running := d.cancel != nil
	d.mu.RUnlock()

	if !running {
		return ErrNotRunning
	}

	select {
	case d.queue <- v:
		d.queued.Add(1)
		return nil
	default:
		d.dropped.Add(1)
		return ErrQueueFull
	}
}

// Start launches the worker pool and blocks until the context is cancelled
// or Stop is called. Use Run() for errgroup pattern or call this in a goroutine.
func (d *Dispatcher[T]) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.cancel != nil {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	ctx = d.ctx
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "dispatcher started",
		logger.Component("dispatch"),
		logger.ID("dispatcher_id", d.id),
		logger.Count("workers", d.workers),
		logger.Count("queue_capacity", cap(d.queue)))

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}

	<-ctx.Done()
	d.logger.Info("dispatcher stopping",
		logger.Component("dispatch"),
		logger.ID("dispatcher_id", d.id))
	return ctx.Err()
}

// Stop gracefully shuts down the dispatcher with a timeout.
// Workers drain the remaining queued values before exiting.
// Returns an error if the shutdown timeout is exceeded.
func (d *Dispatcher[T]) Stop() error {
	d.mu.Lock()
	if d.cancel == nil {
		d.mu.Unlock()
		return ErrNotRunning
	}

	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	cancel()

	d.logger.Info("dispatcher stopping, waiting for workers to drain",
		logger.Component("dispatch"),
		logger.ID("dispatcher_id", d.id),
		slog.Duration("timeout", d.shutdownTimeout))

	ctx, ctxCancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer ctxCancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("dispatcher stopped cleanly",
			logger.Component("dispatch"),
			logger.ID("dispatcher_id", d.id))
		return nil
	case <-ctx.Done():
		d.logger.Warn("dispatcher shutdown timeout exceeded - some deliveries may be abandoned",
			logger.Component("dispatch"),
			logger.ID("dispatcher_id", d.id),
			slog.Duration("timeout", d.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", d.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the dispatcher, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (d *Dispatcher[T]) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- d.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			// Context cancelled - perform graceful shutdown
			_ = d.Stop() // Ignore stop error in normal shutdown
			<-errCh      // Wait for Start() to exit
			return nil
		case err := <-errCh:
			// Start() returned - check if it's a normal shutdown
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

func (d *Dispatcher[T]) worker(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			// Drain accepted values so graceful shutdown does not lose them.
			for {
				select {
				case v := <-d.queue:
					d.deliver(v)
				default:
					return
				}
			}
		case v := <-d.queue:
			d.deliver(v)
		}
	}
}

// deliver fans a value out to the current subscribers, isolating the worker
// from subscriber panics. A panic skips the remaining subscribers of that
// pass only; the worker keeps serving the queue.
func (d *Dispatcher[T]) deliver(v T) {
	defer func() {
		if r := recover(); r != nil {
			d.panics.Add(1)
			d.logger.Error("subscriber panicked during delivery",
				logger.Component("dispatch"),
				logger.ID("dispatcher_id", d.id),
				logger.Key("panic", r),
				logger.Stack())
		}
	}()

	start := time.Now()
	d.bus.Fire(v)
	d.delivered.Add(1)
	d.lastActivityAt.Store(time.Now().Unix())

	d.logger.Debug("value delivered",
		logger.Component("dispatch"),
		logger.ID("dispatcher_id", d.id),
		logger.Subscribers(d.bus.Count()),
		logger.Duration(time.Since(start)))
}

// Stats returns current dispatcher statistics for observability and monitoring.
func (d *Dispatcher[T]) Stats() Stats {
	d.mu.RLock()
	isRunning := d.cancel != nil
	d.mu.RUnlock()

	lastActivity := d.lastActivityAt.Load()
	var lastActivityTime time.Time
	if lastActivity > 0 {
		lastActivityTime = time.Unix(lastActivity, 0)
	}

	return Stats{
		Queued:         d.queued.Load(),
		Delivered:      d.delivered.Load(),
		Dropped:        d.dropped.Load(),
		Panics:         d.panics.Load(),
		Workers:        d.workers,
		IsRunning:      isRunning,
		LastActivityAt: lastActivityTime,
	}
}

// Healthcheck validates that the dispatcher is operational.
// Returns nil if healthy, or an error describing the health issue.
func (d *Dispatcher[T]) Healthcheck(ctx context.Context) error {
	stats := d.Stats()

	if !stats.IsRunning {
		return errors.Join(ErrHealthcheckFailed, ErrNotRunning)
	}

	return nil
}
