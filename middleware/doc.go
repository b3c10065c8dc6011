// Package middleware provides net/http middleware that wires the
// authentication core into request handling.
//
// Auth resolves the session cookie once per request and exposes the
// resulting authenticator through the request context:
//
//	manager, _ := auth.NewManager(credentials, sessions, transport, binder)
//
//	mux := http.NewServeMux()
//	mux.Handle("/account", middleware.AuthWithConfig(middleware.AuthConfig{
//		Manager:     manager,
//		RequireAuth: true,
//	})(accountHandler))
//
// Handlers read the outcome with GetAuthenticator, GetCredential, or
// GetSession. Login and logout handlers fetch the authenticator and call
// Authenticate or Logout on it directly, so the cookie write happens on
// the same response.
package middleware
