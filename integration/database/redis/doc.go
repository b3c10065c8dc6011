// Package redis provides Redis client initialization, health checking, and
// a Redis-backed session store for the authentication core.
//
// # Connection Management
//
// Connect creates a go-redis client with connection validation, linear
// backoff retry logic, and a ping verification before returning:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URL schemes are supported. Healthcheck
// returns a ping-based probe function for readiness endpoints.
//
// # Session Store
//
// NewSessionStore returns an auth.SessionStore that keeps session records
// as JSON values with a TTL:
//
//	sessions := redis.NewSessionStore(client,
//		redis.WithKeyPrefix("myapp:"),
//		redis.WithTTL(30*24*time.Hour),
//	)
//
//	manager, err := auth.NewManager(credentials, sessions, transport, binder)
//
// Each session occupies two keys: the primary record addressed by its auth
// hash and adapter tag, and an id index enabling deletion by session ID.
// Redis evicts both once the TTL lapses, so sessions disappear without a
// background reaper; DeleteExpired is still implemented for eager cleanup
// with a cutoff shorter than the key TTL.
//
// # Error Handling
//
// The package defines sentinel errors checkable with errors.Is():
//
//   - ErrFailedToParseRedisConnString: malformed connection URL
//   - ErrRedisNotReady: Redis did not become ready within the retry budget
//   - ErrEmptyConnectionURL: no connection URL provided
//   - ErrHealthcheckFailed: health check ping failed
//   - ErrDuplicateSession: insert collided with an existing auth hash
package redis
