package dispatch

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultQueueSize is the default capacity of the dispatch queue.
	DefaultQueueSize = 1024

	// DefaultWorkers is the default number of delivery workers.
	DefaultWorkers = 1

	// DefaultShutdownTimeout is the default maximum wait for workers during Stop.
	DefaultShutdownTimeout = 30 * time.Second
)

// Option configures a dispatcher at construction time.
type Option func(*options)

type options struct {
	queueSize       int
	workers         int
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

func defaultOptions() options {
	return options{
		queueSize:       DefaultQueueSize,
		workers:         DefaultWorkers,
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithQueueSize sets the capacity of the dispatch queue.
// Default is 1024. A larger queue allows more values to be buffered
// before producers block. Non-positive sizes are ignored.
func WithQueueSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.queueSize = size
		}
	}
}

// WithWorkers sets the number of delivery workers. Default is 1, which
// preserves dispatch order end to end. With more than one worker values
// may be delivered out of order relative to each other.
// Non-positive counts are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithShutdownTimeout configures the maximum wait for in-flight deliveries
// during Stop. The dispatcher waits this long for workers to drain before
// giving up. Non-positive durations are ignored.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger configures structured logging for dispatcher operations.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies an environment-derived configuration. Zero or negative
// fields keep their defaults, so a partially populated Config is safe.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.QueueSize > 0 {
			o.queueSize = cfg.QueueSize
		}
		if cfg.Workers > 0 {
			o.workers = cfg.Workers
		}
		if cfg.ShutdownTimeout > 0 {
			o.shutdownTimeout = cfg.ShutdownTimeout
		}
	}
}
