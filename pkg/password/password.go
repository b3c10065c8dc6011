package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// minLength is the shortest password accepted for hashing.
const minLength = 8

var (
	// ErrTooShort is returned when the password does not meet the minimum length.
	ErrTooShort = errors.New("password must be at least 8 characters long")
	// ErrMismatch is returned when a password does not match the stored hash.
	ErrMismatch = errors.New("password does not match")
)

// Hash derives a bcrypt hash from a plaintext password using the default
// cost. The result is safe to pass to authentication flows that expect a
// precomputed password hash.
func Hash(plaintext string) (string, error) {
	if len(plaintext) < minLength {
		return "", ErrTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares a plaintext password against a stored bcrypt hash.
// Returns ErrMismatch when the password is wrong; other errors indicate a
// malformed hash.
func Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
