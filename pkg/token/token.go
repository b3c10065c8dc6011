package token

import (
	"crypto/rand"
	"errors"

	"github.com/google/uuid"
)

// ErrEntropyUnavailable is returned when the system entropy source fails.
// This indicates a fatal configuration problem, not a transient condition,
// so callers should not retry.
var ErrEntropyUnavailable = errors.New("entropy source unavailable")

// Generate produces an opaque token that is statistically unique across the
// process lifetime. The token is a version-5 UUID computed over a random
// namespace and a random name, so every call consumes fresh entropy and two
// calls never collide with non-negligible probability.
func Generate() (string, error) {
	namespace, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrEntropyUnavailable, err)
	}

	name := make([]byte, 16)
	if _, err := rand.Read(name); err != nil {
		return "", errors.Join(ErrEntropyUnavailable, err)
	}

	return uuid.NewSHA1(namespace, name).String(), nil
}

// Generator adapts Generate to an injectable dependency.
// The zero value is ready to use.
type Generator struct{}

// Generate implements the token source contract used by authentication flows.
func (Generator) Generate() (string, error) {
	return Generate()
}
