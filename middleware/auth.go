package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionauth/core/auth"
	"github.com/dmitrymomot/sessionauth/core/logger"
)

type authKey struct{}

// ErrAlreadyAuthenticated is passed to the ErrorHandler when a
// RequireGuest route is hit by an authenticated request.
var ErrAlreadyAuthenticated = errors.New("request is already authenticated")

// AuthConfig configures the auth middleware.
type AuthConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Manager resolves the session cookie into per-request state (required)
	Manager *auth.Manager
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// RequireAuth rejects unauthenticated requests via ErrorHandler
	RequireAuth bool
	// RequireGuest rejects authenticated requests via ErrorHandler
	RequireGuest bool
	// Refresh advances the session's last visit on authenticated requests.
	// Costs one store write per request; leave off for read-heavy routes.
	Refresh bool
	// ErrorHandler defines the response for auth failures
	// Default: plain 401 via http.Error
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Auth creates middleware that resolves the session cookie into an
// authenticator and stores it in the request context.
//
// The middleware:
//   - Builds a per-request authenticator from the manager
//   - Runs Initialize to resolve the cookie (store errors are logged and
//     the request continues as a guest)
//   - Stores the authenticator in the request context for handler access
//
// Usage:
//
//	mux.Handle("/dashboard", middleware.Auth(manager)(dashboardHandler))
//
//	func dashboard(w http.ResponseWriter, r *http.Request) {
//		if cred, ok := middleware.GetCredential(r.Context()); ok {
//			// cred.Email is the signed-in user
//		}
//	}
func Auth(manager *auth.Manager) func(http.Handler) http.Handler {
	return AuthWithConfig(AuthConfig{Manager: manager})
}

// AuthWithConfig creates an auth middleware with custom configuration.
//
//	// Protected routes
//	protected := middleware.AuthWithConfig(middleware.AuthConfig{
//		Manager:     manager,
//		RequireAuth: true,
//		Refresh:     true,
//	})
//
//	// Login page rejects signed-in users with a redirect
//	guest := middleware.AuthWithConfig(middleware.AuthConfig{
//		Manager:      manager,
//		RequireGuest: true,
//		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
//			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
//		},
//	})
//
//	// Skip for health checks
//	authn := middleware.AuthWithConfig(middleware.AuthConfig{
//		Manager: manager,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health"
//		},
//	})
func AuthWithConfig(cfg AuthConfig) func(http.Handler) http.Handler {
	if cfg.Manager == nil {
		panic("auth middleware: manager is required")
	}

	if cfg.RequireAuth && cfg.RequireGuest {
		panic("auth middleware: RequireAuth and RequireGuest cannot both be true")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			authn := cfg.Manager.Request(w, r)
			if err := authn.Initialize(r.Context()); err != nil {
				// Store failures degrade to guest instead of failing the
				// request; RequireAuth below still blocks protected routes.
				cfg.Logger.ErrorContext(r.Context(), "auth middleware: session lookup failed",
					logger.Component("middleware"),
					logger.Error(err),
				)
			}

			if cfg.RequireAuth && !authn.IsAuthenticated() {
				cfg.ErrorHandler(w, r, auth.ErrNotAuthenticated)
				return
			}

			if cfg.RequireGuest && authn.IsAuthenticated() {
				cfg.ErrorHandler(w, r, ErrAlreadyAuthenticated)
				return
			}

			if cfg.Refresh && authn.IsAuthenticated() {
				if err := authn.Refresh(r.Context()); err != nil {
					cfg.Logger.ErrorContext(r.Context(), "auth middleware: session refresh failed",
						logger.Component("middleware"),
						logger.Error(err),
					)
				}
			}

			ctx := context.WithValue(r.Context(), authKey{}, authn)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthenticator retrieves the request's authenticator from context.
// Returns the authenticator and true if the middleware ran, nil and false
// otherwise.
func GetAuthenticator(ctx context.Context) (*auth.Authenticator, bool) {
	authn, ok := ctx.Value(authKey{}).(*auth.Authenticator)
	return authn, ok
}

// GetCredential retrieves the authenticated credential from context.
func GetCredential(ctx context.Context) (auth.Credential, bool) {
	authn, ok := GetAuthenticator(ctx)
	if !ok {
		return auth.Credential{}, false
	}
	return authn.Credential()
}

// GetSession retrieves the authenticated session from context.
func GetSession(ctx context.Context) (auth.Session, bool) {
	authn, ok := GetAuthenticator(ctx)
	if !ok {
		return auth.Session{}, false
	}
	return authn.Session()
}
