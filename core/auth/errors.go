package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when email or password is wrong on
	// authenticate. The two cases are deliberately indistinguishable to
	// prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPersistence is returned when a store write fails. The operation is
	// aborted and the caller must not treat the user as authenticated.
	ErrPersistence = errors.New("store write failed")
	// ErrNotFound is the store-level miss signal. Stores wrap it; this
	// package absorbs it during Initialize and maps it to
	// ErrInvalidCredentials during authenticate flows.
	ErrNotFound = errors.New("record not found")
	// ErrNotAuthenticated is returned when an operation requires a bound
	// session but none is present.
	ErrNotAuthenticated = errors.New("no authenticated session")
	// ErrTokenGeneration is returned when the token source fails. This is a
	// fatal configuration error, not a retryable condition.
	ErrTokenGeneration = errors.New("failed to generate session token")
	// ErrInvalidSalt is returned when the hash binder salt is too short.
	ErrInvalidSalt = errors.New("salt must be at least 32 characters long")
)
