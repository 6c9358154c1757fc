package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache stores one parsed configuration value per concrete type.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	cache = &typeCache{values: make(map[string]any)}

	dotenvOnce sync.Once
)

// Load parses environment variables into the provided configuration struct.
// The first call for a given type reads the environment; subsequent calls for
// the same type return the cached value, so every component sees identical
// configuration regardless of load order.
//
// A .env file in the working directory is loaded once before the first parse.
// A missing .env file is not an error.
//
// Example:
//
//	type DispatchConfig struct {
//		QueueSize int           `env:"DISPATCH_QUEUE_SIZE" envDefault:"1024"`
//		Workers   int           `env:"DISPATCH_WORKERS" envDefault:"1"`
//		Timeout   time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg DispatchConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional, ignore load errors.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cache.mu.RLock()
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		cache.mu.RUnlock()
		return nil
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Another goroutine may have parsed the type while we waited for the lock.
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later mutations of v do not leak into the cache.
	cache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeKey[T](), err))
	}
}

// typeKey returns a string identifier for the generic type T.
func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types have no concrete reflect.Type for their zero value.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
