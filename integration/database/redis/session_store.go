package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionauth/core/auth"
)

const (
	defaultKeyPrefix = "sessionauth:"
	defaultTTL       = 30 * 24 * time.Hour
	defaultScanBatch = 1000
)

// SessionStore is a Redis-backed auth.SessionStore. Sessions live under
// hash-addressed keys with a TTL, so Redis evicts idle sessions on its
// own; DeleteExpired remains available for eager cleanup with a shorter
// cutoff than the key TTL.
//
// Two keys exist per session: the primary record addressed by
// (auth_hash, adapter), and an id index used to resolve deletion by
// session ID. Both carry the same TTL.
type SessionStore struct {
	client    *redis.Client
	prefix    string
	ttl       time.Duration
	scanBatch int64
}

// SessionStoreOption configures a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithKeyPrefix overrides the key namespace prefix.
func WithKeyPrefix(prefix string) SessionStoreOption {
	return func(s *SessionStore) {
		s.prefix = prefix
	}
}

// WithTTL overrides the lifetime assigned to session keys. It should
// match the cookie lifetime so both sides expire together.
func WithTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithScanBatchSize overrides the SCAN batch size used by DeleteExpired.
func WithScanBatchSize(size int) SessionStoreOption {
	return func(s *SessionStore) {
		if size > 0 {
			s.scanBatch = int64(size)
		}
	}
}

// NewSessionStore creates a session store over the given client.
func NewSessionStore(client *redis.Client, opts ...SessionStoreOption) *SessionStore {
	store := &SessionStore{
		client:    client,
		prefix:    defaultKeyPrefix,
		ttl:       defaultTTL,
		scanBatch: defaultScanBatch,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *SessionStore) hashKey(authHash, adapter string) string {
	return s.prefix + "hash:" + adapter + ":" + authHash
}

func (s *SessionStore) idKey(id uuid.UUID) string {
	return s.prefix + "id:" + id.String()
}

// FindByHash resolves a session by its auth hash and adapter tag.
func (s *SessionStore) FindByHash(ctx context.Context, authHash, adapter string) (auth.Session, error) {
	payload, err := s.client.Get(ctx, s.hashKey(authHash, adapter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Session{}, fmt.Errorf("session: %w", auth.ErrNotFound)
		}
		return auth.Session{}, fmt.Errorf("get session: %w", err)
	}

	var session auth.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return auth.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

// Insert persists a new session. The primary key is written with NX so a
// hash collision between concurrent logins fails loudly instead of
// silently overwriting an existing session.
func (s *SessionStore) Insert(ctx context.Context, session auth.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	key := s.hashKey(session.AuthHash, session.Adapter)
	ok, err := s.client.SetNX(ctx, key, payload, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	if !ok {
		return ErrDuplicateSession
	}

	if err := s.client.Set(ctx, s.idKey(session.ID), key, s.ttl).Err(); err != nil {
		_ = s.client.Del(ctx, key).Err()
		return fmt.Errorf("index session: %w", err)
	}
	return nil
}

// Update rewrites an existing session and resets both key TTLs, so a
// refreshed session stays alive for another full lifetime.
func (s *SessionStore) Update(ctx context.Context, session auth.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	key := s.hashKey(session.AuthHash, session.Adapter)
	err = s.client.SetArgs(ctx, key, payload, redis.SetArgs{
		Mode: "XX",
		TTL:  s.ttl,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("session %s: %w", session.ID, auth.ErrNotFound)
		}
		return fmt.Errorf("update session: %w", err)
	}

	_ = s.client.Expire(ctx, s.idKey(session.ID), s.ttl).Err()
	return nil
}

// Delete removes a session by ID, resolving the primary key through the
// id index.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	idKey := s.idKey(id)
	key, err := s.client.Get(ctx, idKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("session %s: %w", id, auth.ErrNotFound)
		}
		return fmt.Errorf("resolve session key: %w", err)
	}

	if err := s.client.Del(ctx, key, idKey).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired scans session records and removes those idle since before
// the cutoff, returning the number of deleted sessions. Redis TTL already
// bounds session lifetime; this exists for eager cleanup when the cutoff
// is shorter than the key TTL.
func (s *SessionStore) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	var deleted int64
	iter := s.client.Scan(ctx, 0, s.prefix+"hash:*", s.scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		payload, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // Expired between scan and read
			}
			return deleted, fmt.Errorf("get session: %w", err)
		}

		var session auth.Session
		if err := json.Unmarshal(payload, &session); err != nil {
			return deleted, fmt.Errorf("decode session: %w", err)
		}
		if !session.LastVisit.Before(olderThan) {
			continue
		}

		if err := s.client.Del(ctx, key, s.idKey(session.ID)).Err(); err != nil {
			return deleted, fmt.Errorf("delete session: %w", err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan sessions: %w", err)
	}
	return deleted, nil
}
