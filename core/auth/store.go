package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CredentialStore defines credential persistence. Implementations must
// enforce a uniqueness constraint on email and surface violations as errors
// from Insert; this package maps them to ErrPersistence.
//
// Lookup methods return an error wrapping ErrNotFound when no record
// matches. Email matching follows the store's own collation; this package
// never normalizes email case.
type CredentialStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (Credential, error)
	FindByEmail(ctx context.Context, email string) (Credential, error)
	FindByEmailAndHash(ctx context.Context, email, passwordHash string) (Credential, error)
	Insert(ctx context.Context, credential Credential) error
}

// SessionStore defines session persistence. Implementations must enforce
// uniqueness on (auth_hash, adapter); a violation from simultaneous logins
// is surfaced as an Insert error, not handled here.
type SessionStore interface {
	FindByHash(ctx context.Context, authHash, adapter string) (Session, error)
	Insert(ctx context.Context, session Session) error
	Update(ctx context.Context, session Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes sessions whose last visit predates the cutoff
	// and returns the count of deleted rows.
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

// CookieTransport delivers the raw session token to and from the client.
// Implementations decide how values are protected in transit; see
// core/cookie for the HMAC-signed implementation.
type CookieTransport interface {
	Has(r *http.Request) bool
	Get(r *http.Request) (string, error)
	Set(w http.ResponseWriter, value string, expiresAt time.Time) error
	Delete(w http.ResponseWriter)
}

// TokenSource produces opaque session tokens. pkg/token provides the
// default implementation.
type TokenSource interface {
	Generate() (string, error)
}
