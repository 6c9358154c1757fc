package hub

import (
	"io"
	"log/slog"
)

// Option configures a hub at construction time.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics func(topic string, subscribers int)
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger configures structured logging for hub operations.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics registers a callback invoked after every subscriber-count
// change with the topic name and its new subscriber count. The callback runs
// outside the registry lock and must be safe for concurrent use.
func WithMetrics(fn func(topic string, subscribers int)) Option {
	return func(o *options) {
		if fn != nil {
			o.metrics = fn
		}
	}
}
