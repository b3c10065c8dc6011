package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionauth/core/auth"
)

const sessionColumns = `id, auth_id, adapter, auth_hash, user_hash, user_ip, created_at, last_visit`

// SessionStore is a PostgreSQL-backed auth.SessionStore. Uniqueness of
// (auth_hash, adapter) is enforced by sessions_auth_hash_adapter_idx, so
// colliding simultaneous logins fail at insert rather than corrupting state.
type SessionStore struct {
	pool *pgxpool.Pool
}

// NewSessionStore creates a session store over the given pool.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) q(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// FindByHash resolves a session by its auth hash and adapter tag.
func (s *SessionStore) FindByHash(ctx context.Context, authHash, adapter string) (auth.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE auth_hash = $1 AND adapter = $2`
	return scanSession(s.q(ctx).QueryRow(ctx, query, authHash, adapter))
}

// Insert persists a new session row.
func (s *SessionStore) Insert(ctx context.Context, session auth.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.q(ctx).Exec(ctx, query,
		session.ID,
		session.AuthID,
		session.Adapter,
		session.AuthHash,
		session.UserHash,
		int64(session.UserIP),
		session.CreatedAt,
		session.LastVisit,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Update rewrites the mutable session fields, which in practice is
// last_visit advanced by Refresh.
func (s *SessionStore) Update(ctx context.Context, session auth.Session) error {
	query := `UPDATE sessions SET last_visit = $2 WHERE id = $1`
	tag, err := s.q(ctx).Exec(ctx, query, session.ID, session.LastVisit)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", session.ID, auth.ErrNotFound)
	}
	return nil
}

// Delete removes a session row. Deleting an absent row is a miss, not a
// failure; callers decide whether that matters.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.q(ctx).Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, auth.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes sessions idle since before the cutoff and returns
// the number of deleted rows.
func (s *SessionStore) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := s.q(ctx).Exec(ctx, `DELETE FROM sessions WHERE last_visit < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (auth.Session, error) {
	var (
		session auth.Session
		userIP  int64
	)
	err := row.Scan(
		&session.ID,
		&session.AuthID,
		&session.Adapter,
		&session.AuthHash,
		&session.UserHash,
		&userIP,
		&session.CreatedAt,
		&session.LastVisit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Session{}, fmt.Errorf("session: %w", auth.ErrNotFound)
		}
		return auth.Session{}, fmt.Errorf("scan session: %w", err)
	}
	session.UserIP = uint32(userIP)
	return session, nil
}
