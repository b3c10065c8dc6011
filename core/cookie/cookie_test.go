package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/core/cookie"
)

const testSecret = "test-secret-that-is-32-chars-long!!"

func newManager(t *testing.T, secrets ...string) *cookie.Manager {
	t.Helper()
	if len(secrets) == 0 {
		secrets = []string{testSecret}
	}
	m, err := cookie.New(secrets)
	require.NoError(t, err)
	return m
}

// requestWith returns a request carrying the cookies set in the recorder.
func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew_Validation(t *testing.T) {
	t.Run("no secrets", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("empty secrets filtered", func(t *testing.T) {
		_, err := cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := cookie.New([]string{"too-short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestSetGet_RoundTrip(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()

	require.NoError(t, m.Set(w, "name", "value"))

	got, err := m.Get(requestWith(w), "name")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestGet_Missing(t *testing.T) {
	m := newManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := m.Get(r, "absent")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestHas(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "name", "value"))

	assert.True(t, m.Has(requestWith(w), "name"))
	assert.False(t, m.Has(httptest.NewRequest(http.MethodGet, "/", nil), "name"))
}

func TestSigned_RoundTrip(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()

	require.NoError(t, m.SetSigned(w, "token", "raw-token-value"))

	got, err := m.GetSigned(requestWith(w), "token")
	require.NoError(t, err)
	assert.Equal(t, "raw-token-value", got)
}

func TestSigned_TamperDetected(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "token", "raw-token-value"))

	c := w.Result().Cookies()[0]
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value + "x"})

	_, err := m.GetSigned(r, "token")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestSigned_MalformedValue(t *testing.T) {
	m := newManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "no-separator"})

	_, err := m.GetSigned(r, "token")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}

func TestSigned_KeyRotation(t *testing.T) {
	oldSecret := "old-secret-that-is-32-chars-long!!!"
	oldManager := newManager(t, oldSecret)

	w := httptest.NewRecorder()
	require.NoError(t, oldManager.SetSigned(w, "token", "survives-rotation"))

	// New manager signs with a fresh secret but still accepts the old one.
	rotated := newManager(t, testSecret, oldSecret)
	got, err := rotated.GetSigned(requestWith(w), "token")
	require.NoError(t, err)
	assert.Equal(t, "survives-rotation", got)
}

func TestSet_TooLarge(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()

	err := m.Set(w, "big", strings.Repeat("a", cookie.MaxCookieSize))
	var tooLarge cookie.ErrCookieTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "big", tooLarge.Name)
}

func TestDelete(t *testing.T) {
	m := newManager(t)
	w := httptest.NewRecorder()

	m.Delete(w, "name")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "name", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
