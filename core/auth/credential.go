package auth

import (
	"time"

	"github.com/google/uuid"
)

// Status describes the lifecycle state of a credential record.
type Status string

const (
	// StatusLocked marks a credential awaiting activation. Newly created
	// credentials start locked.
	StatusLocked Status = "locked"
	// StatusActive marks a credential cleared for use.
	StatusActive Status = "active"
)

// Credential is a stored identity record. The password hash is always
// precomputed by the caller; raw passwords never reach this package.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCredential builds a locked credential with a fresh ID and current
// timestamps. Activation is a separate administrative step.
func NewCredential(email, passwordHash string) Credential {
	now := time.Now()
	return Credential{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Status:       StatusLocked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsLocked reports whether the credential still requires activation.
func (c Credential) IsLocked() bool {
	return c.Status == StatusLocked
}
