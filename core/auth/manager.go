package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionauth/pkg/token"
)

// Manager holds the process-wide authentication dependencies: stores, cookie
// transport, token source, and hash binder. It is safe for concurrent use;
// per-request state lives in the Authenticator values it produces.
type Manager struct {
	credentials CredentialStore
	sessions    SessionStore
	transport   CookieTransport
	binder      *HashBinder
	tokens      TokenSource
	config      Config
	log         *slog.Logger
}

// NewManager creates an authentication manager. All four collaborators are
// required; options tune adapter name, TTL, token source, and logging.
func NewManager(
	credentials CredentialStore,
	sessions SessionStore,
	transport CookieTransport,
	binder *HashBinder,
	opts ...Option,
) (*Manager, error) {
	if credentials == nil {
		return nil, errors.New("auth: credential store is required")
	}
	if sessions == nil {
		return nil, errors.New("auth: session store is required")
	}
	if transport == nil {
		return nil, errors.New("auth: cookie transport is required")
	}
	if binder == nil {
		return nil, errors.New("auth: hash binder is required")
	}

	m := &Manager{
		credentials: credentials,
		sessions:    sessions,
		transport:   transport,
		binder:      binder,
		tokens:      token.Generator{},
		config:      defaultConfig(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Adapter returns the adapter tag written into session rows.
func (m *Manager) Adapter() string {
	return m.config.Adapter
}

// Request binds the manager to a single request/response pair, producing
// the per-request state machine. Authenticators must not be shared across
// concurrent requests.
func (m *Manager) Request(w http.ResponseWriter, r *http.Request) *Authenticator {
	return &Authenticator{
		manager: m,
		w:       w,
		r:       r,
		state:   StateUnauthenticated,
	}
}
