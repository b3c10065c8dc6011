package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when a nil pointer is passed to Load.
	ErrNilConfig = errors.New("config target must be a non-nil pointer")
	// ErrParseFailed is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParseFailed = errors.New("failed to parse environment variables")
)

var (
	cache   sync.Map // reflect.Type -> parsed config value
	envOnce sync.Once
)

// Load parses environment variables into cfg, caching the result per type.
// Subsequent calls with the same type return the cached value, so a config
// struct reflects the environment as it was on first load. A .env file in
// the working directory is loaded once before the first parse; a missing
// file is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	envOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
