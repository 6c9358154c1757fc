package dispatch

import "time"

// Config carries dispatcher settings sourced from environment variables.
// Load it with core/config or populate it directly and pass it to WithConfig.
type Config struct {
	// QueueSize is the capacity of the dispatch queue.
	QueueSize int `env:"DISPATCH_QUEUE_SIZE" envDefault:"1024"`

	// Workers is the number of delivery workers.
	Workers int `env:"DISPATCH_WORKERS" envDefault:"1"`

	// ShutdownTimeout bounds the graceful drain during Stop.
	ShutdownTimeout time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
