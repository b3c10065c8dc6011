package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session binds one credential to one active client. The raw cookie token
// is never stored; AuthHash holds its salted one-way derivation, so a stolen
// session table cannot be replayed without the original tokens.
type Session struct {
	ID uuid.UUID `json:"id"`

	// AuthID references the credential this session authenticates.
	AuthID uuid.UUID `json:"auth_id"`

	// Adapter tags which authentication strategy issued the session,
	// letting multiple strategies share one store.
	Adapter string `json:"adapter"`

	// AuthHash is the salted hash of the cookie token. Unique per adapter.
	AuthHash string `json:"auth_hash"`

	// UserHash is a secondary opaque token unrelated to the cookie, usable
	// for CSRF binding or client tracking.
	UserHash string `json:"user_hash"`

	// UserIP is the client address at creation time, ip2long-encoded.
	UserIP uint32 `json:"user_ip"`

	CreatedAt time.Time `json:"created_at"`

	// LastVisit advances on Refresh, not on every Initialize, so read-only
	// requests don't force a store write.
	LastVisit time.Time `json:"last_visit"`
}

// IsZero reports whether the session is an empty value.
func (s Session) IsZero() bool {
	return s.ID == uuid.Nil
}
