package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// minSaltLength matches the cookie manager's secret requirement.
const minSaltLength = 32

// HashBinder derives the stored session hash from a raw cookie token and a
// process-wide secret salt. The derivation is deterministic per (token, salt)
// pair so re-validation recomputes the identical hash, and one-way so the
// stored value cannot be turned back into a usable cookie.
//
// The salt is process configuration, loaded once at startup. Rotating it
// invalidates every outstanding session.
type HashBinder struct {
	salt []byte
}

// NewHashBinder creates a binder with the given secret salt.
func NewHashBinder(salt string) (*HashBinder, error) {
	if len(salt) < minSaltLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d",
			ErrInvalidSalt, len(salt), minSaltLength)
	}
	return &HashBinder{salt: []byte(salt)}, nil
}

// Hash returns the hex-encoded HMAC-SHA256 of the token under the salt.
func (b *HashBinder) Hash(token string) string {
	mac := hmac.New(sha256.New, b.salt)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
