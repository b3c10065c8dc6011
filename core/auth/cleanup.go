package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionauth/core/logger"
)

// Cleaner periodically removes session rows whose last visit predates the
// TTL. Cookie expiry alone makes stale rows unreachable but never deletes
// them; the cleaner is the maintenance task that does, run outside the
// request path.
type Cleaner struct {
	sessions SessionStore
	ttl      time.Duration
	interval time.Duration
	log      *slog.Logger
}

// CleanerOption configures the cleaner.
type CleanerOption func(*Cleaner)

// WithCleanerLogger sets the structured logger for sweep reporting.
func WithCleanerLogger(log *slog.Logger) CleanerOption {
	return func(c *Cleaner) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCleaner creates a cleaner deleting sessions idle longer than ttl,
// sweeping every interval.
func NewCleaner(sessions SessionStore, ttl, interval time.Duration, opts ...CleanerOption) (*Cleaner, error) {
	if sessions == nil {
		return nil, errors.New("auth: session store is required")
	}
	if ttl <= 0 {
		return nil, errors.New("auth: cleaner ttl must be positive")
	}
	if interval <= 0 {
		return nil, errors.New("auth: cleaner interval must be positive")
	}

	c := &Cleaner{
		sessions: sessions,
		ttl:      ttl,
		interval: interval,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RunOnce performs a single sweep and returns the number of deleted rows.
func (c *Cleaner) RunOnce(ctx context.Context) (int64, error) {
	start := time.Now()

	deleted, err := c.sessions.DeleteExpired(ctx, time.Now().Add(-c.ttl))
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}

	if deleted > 0 {
		c.log.InfoContext(ctx, "expired sessions removed",
			logger.Component("auth.cleaner"),
			logger.Count("deleted", int(deleted)),
			logger.Elapsed(start),
		)
	}
	return deleted, nil
}

// Run sweeps on the configured interval until the context is canceled.
// Sweep failures are logged and the loop continues; only context
// cancellation stops it.
func (c *Cleaner) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := c.RunOnce(ctx); err != nil {
				c.log.ErrorContext(ctx, "session sweep failed",
					logger.Component("auth.cleaner"),
					logger.Error(err),
				)
			}
		}
	}
}
