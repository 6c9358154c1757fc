// Package logger provides structured logging attribute helpers built on Go's
// standard slog package. It offers a consistent vocabulary of pre-built
// attributes for event-driven code so that dispatchers, hubs, and observers
// across an application log the same facts under the same keys.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Consistent attribute keys across components (event, topic, component, error)
//   - Type-safe attribute creation with nil safety
//   - Empty Attr pattern: nil errors and empty values vanish from output
//   - Debugging helpers for stack traces and caller information
//
// # Basic Usage
//
// Pass the helpers directly to slog calls:
//
//	import "github.com/dmitrymomot/eventkit/core/logger"
//
//	log.Info("dispatcher started",
//		logger.Component("dispatch"),
//		logger.Event("startup"),
//		logger.Count("workers", 4),
//	)
//
//	log.Info("message published",
//		logger.Component("hub"),
//		logger.Topic("orders.created"),
//		logger.Subscribers(12),
//		logger.Duration(time.Since(start)),
//	)
//
// # Error Logging
//
// Error helpers return an empty Attr for nil errors, so call sites never need
// explicit nil checks:
//
//	log.Error("delivery failed",
//		logger.Error(err),
//		logger.Topic(topic),
//		logger.Component("hub"),
//	)
//
//	// Multiple errors keep their order under indexed keys
//	log.Error("shutdown incomplete",
//		logger.Errors(drainErr, closeErr),
//	)
//
// # Timing
//
// Record durations either directly or from a start time:
//
//	start := time.Now()
//	// ... deliver events ...
//	log.Info("batch delivered",
//		logger.Duration(elapsed),
//		logger.Elapsed(start),
//		logger.Count("delivered", n),
//	)
//
// # Debugging and Diagnostics
//
// Capture stack traces and caller information when recovering from panics or
// tracing unexpected states:
//
//	defer func() {
//		if r := recover(); r != nil {
//			log.Error("subscriber panicked",
//				logger.Key("panic", r),
//				logger.Stack(),
//				logger.Component("dispatch"),
//			)
//		}
//	}()
//
// # Grouping
//
// Use Group to organize related attributes:
//
//	log.Info("hub state",
//		logger.Group("stats",
//			slog.Int("topics", topics),
//			slog.Int("subscribers", subs),
//		),
//	)
package logger
