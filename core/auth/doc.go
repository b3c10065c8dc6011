// Package auth implements cookie-based session authentication: credential
// verification, hashed session tokens delivered via cookie, request
// re-validation, logout, and credential provisioning.
//
// # Model
//
// A Credential is a stored identity record (email, precomputed password
// hash, status). A Session binds one credential to one client: the client
// holds an opaque token in a cookie, the server stores only the token's
// salted HMAC-SHA256 (the auth hash). A data-store breach therefore yields
// nothing replayable, since the raw tokens exist only in client cookies.
//
// # Components
//
//   - HashBinder: derives the stored hash from raw token plus secret salt
//   - Manager: process-wide dependency bundle (stores, transport, tokens)
//   - Authenticator: per-request state machine produced by Manager.Request
//   - Cleaner: periodic reaper for idle session rows
//
// Stores and cookie transport are interfaces; integration/database provides
// Postgres and Redis session stores, core/cookie the signed cookie
// transport.
//
// # Request Lifecycle
//
// Construct one Authenticator per request and drive the state machine:
//
//	manager, err := auth.NewManager(credentials, sessions, transport, binder)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		a := manager.Request(w, r)
//
//		// Re-validate the session cookie. Missing/stale cookies are not
//		// errors; the request simply stays unauthenticated.
//		if err := a.Initialize(r.Context()); err != nil {
//			http.Error(w, "internal error", http.StatusInternalServerError)
//			return
//		}
//
//		if cred, ok := a.Credential(); ok {
//			fmt.Fprintf(w, "hello %s", cred.Email)
//		}
//	}
//
// Login and logout:
//
//	a := manager.Request(w, r)
//	switch err := a.Authenticate(ctx, email, passwordHash); {
//	case errors.Is(err, auth.ErrInvalidCredentials):
//		// Safe to show generically; never reveals which half was wrong.
//	case err != nil:
//		// Store failure; the user is NOT authenticated.
//	}
//
//	_ = a.Logout(ctx) // idempotent
//
// # Ordering Guarantee
//
// Session issuance persists the row first and writes the cookie only after
// the insert succeeds. A store failure therefore never leaves the client
// holding a cookie for a session that doesn't exist.
//
// # Concurrency
//
// Manager is safe for concurrent use. Authenticator is not: one per
// request, never shared. Cancellation and timeouts belong to the request
// context supplied by the caller.
package auth
