package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionauth/core/logger"
	"github.com/dmitrymomot/sessionauth/pkg/clientip"
)

// State is the per-request authentication state. It is never persisted.
type State int

const (
	// StateUnauthenticated means no valid session is bound to the request.
	StateUnauthenticated State = iota
	// StateAuthenticating means a credential check is in flight.
	StateAuthenticating
	// StateAuthenticated means a credential and session are bound.
	StateAuthenticated
	// StateInvalid means a session row resolved but its credential is
	// missing. The request proceeds as a guest; the orphan row is removed.
	StateInvalid
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateInvalid:
		return "invalid"
	default:
		return "unauthenticated"
	}
}

// Authenticator is the per-request authentication state machine. It reads
// the session cookie, verifies credentials, issues and revokes sessions.
// One authenticator serves exactly one request; no internal locking exists.
type Authenticator struct {
	manager *Manager
	w       http.ResponseWriter
	r       *http.Request

	state      State
	credential Credential
	session    Session
}

// State returns the current request state.
func (a *Authenticator) State() State {
	return a.state
}

// IsAuthenticated reports whether a credential and session are bound.
func (a *Authenticator) IsAuthenticated() bool {
	return a.state == StateAuthenticated
}

// Credential returns the bound credential, if any.
func (a *Authenticator) Credential() (Credential, bool) {
	if a.state != StateAuthenticated {
		return Credential{}, false
	}
	return a.credential, true
}

// Session returns the bound session, if any.
func (a *Authenticator) Session() (Session, bool) {
	if a.state != StateAuthenticated || a.session.IsZero() {
		return Session{}, false
	}
	return a.session, true
}

// Authenticate verifies the email/password-hash pair against the credential
// store and issues a fresh session on success. A miss returns
// ErrInvalidCredentials without revealing which half was wrong.
//
// Email case is matched exactly as stored; normalization is the caller's
// responsibility.
func (a *Authenticator) Authenticate(ctx context.Context, email, passwordHash string) error {
	a.state = StateAuthenticating

	credential, err := a.manager.credentials.FindByEmailAndHash(ctx, email, passwordHash)
	if err != nil {
		a.state = StateUnauthenticated
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	return a.bindAndIssue(ctx, credential)
}

// FakeAuthenticate issues a session for the credential matching email alone,
// skipping the password check. Intended for administrative impersonation
// ("login as") flows only; callers must ensure this path is unreachable by
// untrusted input. Failure contract matches Authenticate.
func (a *Authenticator) FakeAuthenticate(ctx context.Context, email string) error {
	a.state = StateAuthenticating

	credential, err := a.manager.credentials.FindByEmail(ctx, email)
	if err != nil {
		a.state = StateUnauthenticated
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	return a.bindAndIssue(ctx, credential)
}

// bindAndIssue binds the credential and runs the shared session issuance.
func (a *Authenticator) bindAndIssue(ctx context.Context, credential Credential) error {
	a.credential = credential

	if err := a.issueSession(ctx); err != nil {
		a.credential = Credential{}
		a.state = StateUnauthenticated
		return err
	}

	a.state = StateAuthenticated
	a.manager.log.InfoContext(ctx, "session issued",
		logger.Component("auth"),
		logger.ID("credential_id", credential.ID),
		logger.ID("session_id", a.session.ID),
	)
	return nil
}

// issueSession generates a fresh token, persists the session row, and only
// after the insert succeeds writes the cookie. On insert failure the client
// never sees a cookie, so no half-issued session state can leak.
func (a *Authenticator) issueSession(ctx context.Context) error {
	raw, err := a.manager.tokens.Generate()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}

	userHash, err := a.manager.tokens.Generate()
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	session := Session{
		ID:        uuid.New(),
		AuthID:    a.credential.ID,
		Adapter:   a.manager.config.Adapter,
		AuthHash:  a.manager.binder.Hash(raw),
		UserHash:  userHash,
		UserIP:    clientip.ToUint32(clientip.GetIP(a.r)),
		CreatedAt: now,
		LastVisit: now,
	}

	if err := a.manager.sessions.Insert(ctx, session); err != nil {
		return errors.Join(ErrPersistence, err)
	}

	if err := a.manager.transport.Set(a.w, raw, now.Add(a.manager.config.TTL)); err != nil {
		// The row is in but the client never got the token, so the session
		// can never be presented. Remove it rather than leave garbage.
		if delErr := a.manager.sessions.Delete(ctx, session.ID); delErr != nil {
			a.manager.log.ErrorContext(ctx, "failed to remove unreachable session",
				logger.Component("auth"),
				logger.ID("session_id", session.ID),
				logger.Error(delErr),
			)
		}
		return errors.Join(ErrPersistence, err)
	}

	a.session = session
	return nil
}

// Initialize re-authenticates the request from its session cookie. An absent
// cookie, a forged or stale cookie, and an unknown hash all leave the state
// Unauthenticated with a nil error; those are normal outcomes, not failures.
// Store read failures are returned as errors.
//
// Initialize never updates LastVisit; call Refresh for that.
func (a *Authenticator) Initialize(ctx context.Context) error {
	if !a.manager.transport.Has(a.r) {
		a.state = StateUnauthenticated
		return nil
	}

	raw, err := a.manager.transport.Get(a.r)
	if err != nil {
		// Broken signature or unreadable value: silently ignored, same as
		// an unknown token. The cookie is left in place.
		a.state = StateUnauthenticated
		return nil
	}

	session, err := a.manager.sessions.FindByHash(ctx, a.manager.binder.Hash(raw), a.manager.config.Adapter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.state = StateUnauthenticated
			return nil
		}
		return err
	}

	credential, err := a.manager.credentials.FindByID(ctx, session.AuthID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// A session row pointing at a missing credential can never
			// become valid again. Drop it and continue as a guest.
			a.state = StateInvalid
			if delErr := a.manager.sessions.Delete(ctx, session.ID); delErr != nil && !errors.Is(delErr, ErrNotFound) {
				a.manager.log.ErrorContext(ctx, "failed to remove orphaned session",
					logger.Component("auth"),
					logger.ID("session_id", session.ID),
					logger.Error(delErr),
				)
			}
			return nil
		}
		return err
	}

	a.session = session
	a.credential = credential
	a.state = StateAuthenticated
	return nil
}

// Refresh advances the bound session's LastVisit. Kept separate from
// Initialize so read-only requests cost no store write.
func (a *Authenticator) Refresh(ctx context.Context) error {
	if a.state != StateAuthenticated || a.session.IsZero() {
		return ErrNotAuthenticated
	}

	a.session.LastVisit = time.Now()
	if err := a.manager.sessions.Update(ctx, a.session); err != nil {
		return errors.Join(ErrPersistence, err)
	}
	return nil
}

// Logout deletes the cookie and the stored session row, then resets the
// state. Both deletes are idempotent: absent targets are not errors, so
// calling Logout twice succeeds.
func (a *Authenticator) Logout(ctx context.Context) error {
	a.manager.transport.Delete(a.w)

	if !a.session.IsZero() {
		if err := a.manager.sessions.Delete(ctx, a.session.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return errors.Join(ErrPersistence, err)
		}
	}

	a.session = Session{}
	a.credential = Credential{}
	a.state = StateUnauthenticated
	return nil
}

// CreateCredentials inserts a new locked credential with a fresh ID and
// current timestamps. The store's email uniqueness constraint rejects
// duplicates; the rejection surfaces as ErrPersistence.
func (a *Authenticator) CreateCredentials(ctx context.Context, email, passwordHash string) (Credential, error) {
	credential := NewCredential(email, passwordHash)

	if err := a.manager.credentials.Insert(ctx, credential); err != nil {
		return Credential{}, errors.Join(ErrPersistence, err)
	}

	a.credential = credential
	return credential, nil
}
