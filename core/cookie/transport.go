package cookie

import (
	"net/http"
	"time"
)

// Transport binds a Manager to a fixed cookie name, exposing the narrow
// get/set/delete surface authentication flows need. Values are HMAC-signed
// so a tampered cookie is indistinguishable from an absent one.
type Transport struct {
	manager *Manager
	name    string
}

// NewTransport creates a transport for the named cookie.
func NewTransport(manager *Manager, name string) *Transport {
	return &Transport{
		manager: manager,
		name:    name,
	}
}

// Has reports whether the request carries the session cookie.
func (t *Transport) Has(r *http.Request) bool {
	return t.manager.Has(r, t.name)
}

// Get returns the verified cookie value. A missing cookie returns
// ErrCookieNotFound; a cookie with a broken signature returns
// ErrInvalidSignature.
func (t *Transport) Get(r *http.Request) (string, error) {
	return t.manager.GetSigned(r, t.name)
}

// Set writes the signed cookie value, expiring at the given time.
func (t *Transport) Set(w http.ResponseWriter, value string, expiresAt time.Time) error {
	maxAge := int(time.Until(expiresAt).Seconds())
	return t.manager.SetSigned(w, t.name, value,
		WithHTTPOnly(true),
		WithSecure(true),
		WithSameSite(http.SameSiteLaxMode),
		WithMaxAge(maxAge),
	)
}

// Delete expires the cookie on the client. Deleting an absent cookie is a
// no-op on the client side, so this is safe to call unconditionally.
func (t *Transport) Delete(w http.ResponseWriter) {
	t.manager.Delete(w, t.name)
}
