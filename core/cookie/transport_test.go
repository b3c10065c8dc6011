package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/core/cookie"
)

func newTransport(t *testing.T) *cookie.Transport {
	t.Helper()
	return cookie.NewTransport(newManager(t), "auth_token")
}

func TestTransport_RoundTrip(t *testing.T) {
	transport := newTransport(t)
	w := httptest.NewRecorder()

	require.NoError(t, transport.Set(w, "opaque-token", time.Now().Add(time.Hour)))

	r := requestWith(w)
	assert.True(t, transport.Has(r))

	got, err := transport.Get(r)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got)
}

func TestTransport_Expiry(t *testing.T) {
	transport := newTransport(t)
	w := httptest.NewRecorder()

	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	require.NoError(t, transport.Set(w, "opaque-token", expiresAt))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.InDelta(t, 30*24*3600, cookies[0].MaxAge, 5)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestTransport_HasMissing(t *testing.T) {
	transport := newTransport(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.False(t, transport.Has(r))

	_, err := transport.Get(r)
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestTransport_Delete(t *testing.T) {
	transport := newTransport(t)
	w := httptest.NewRecorder()

	transport.Delete(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
