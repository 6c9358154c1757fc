// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/eventkit/core/config"
//
//	type DispatchConfig struct {
//		QueueSize int           `env:"DISPATCH_QUEUE_SIZE" envDefault:"1024"`
//		Workers   int           `env:"DISPATCH_WORKERS" envDefault:"1"`
//		Timeout   time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	func main() {
//		var cfg DispatchConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 DispatchConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 DispatchConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type HubConfig struct {
//		BufferSize int `env:"HUB_BUFFER_SIZE" envDefault:"64"`
//	}
//
//	type WorkerConfig struct {
//		Concurrency int `env:"WORKER_CONCURRENCY" envDefault:"4"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&HubConfig{})
//	config.MustLoad(&WorkerConfig{})
package config
