package auth

import (
	"log/slog"
	"time"
)

// Config holds authentication manager configuration. Fields carry env tags
// for loading through core/config.
type Config struct {
	// Adapter tags session rows issued by this manager.
	Adapter string `env:"AUTH_ADAPTER" envDefault:"session"`
	// TTL is the cookie lifetime for issued sessions.
	TTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"720h"`
}

// defaultConfig returns default configuration: adapter "session", 30-day TTL.
func defaultConfig() Config {
	return Config{
		Adapter: "session",
		TTL:     30 * 24 * time.Hour,
	}
}

// Option is a functional option for configuring the manager.
type Option func(*Manager)

// WithConfig replaces the manager configuration wholesale, typically with a
// struct loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		if cfg.Adapter != "" {
			m.config.Adapter = cfg.Adapter
		}
		if cfg.TTL > 0 {
			m.config.TTL = cfg.TTL
		}
	}
}

// WithAdapterName sets the adapter tag written into session rows.
func WithAdapterName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.config.Adapter = name
		}
	}
}

// WithTTL sets the session cookie lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.config.TTL = ttl
		}
	}
}

// WithTokenSource replaces the default token generator. Mainly useful for
// deterministic tokens in tests.
func WithTokenSource(source TokenSource) Option {
	return func(m *Manager) {
		if source != nil {
			m.tokens = source
		}
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
