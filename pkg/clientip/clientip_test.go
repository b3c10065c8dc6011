package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionauth/pkg/clientip"
)

func newRequest(remoteAddr string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare header wins",
			remoteAddr: "10.0.0.1:1234",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.2",
				"X-Forwarded-For":  "192.0.2.1",
			},
			want: "198.51.100.2",
		},
		{
			name:       "forwarded for takes leftmost client",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "192.0.2.1, 10.0.0.2, 10.0.0.3"},
			want:       "192.0.2.1",
		},
		{
			name:       "forwarded for skips malformed entries",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 192.0.2.9"},
			want:       "192.0.2.9",
		},
		{
			name:       "real ip fallback",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "192.0.2.5"},
			want:       "192.0.2.5",
		},
		{
			name:       "unspecified address rejected",
			remoteAddr: "203.0.113.7:54321",
			headers:    map[string]string{"X-Real-IP": "0.0.0.0"},
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clientip.GetIP(newRequest(tt.remoteAddr, tt.headers)))
		})
	}
}

func TestToUint32(t *testing.T) {
	assert.Equal(t, uint32(0x7f000001), clientip.ToUint32("127.0.0.1"))
	assert.Equal(t, uint32(0xc0a80101), clientip.ToUint32("192.168.1.1"))
	assert.Zero(t, clientip.ToUint32("2001:db8::1"))
	assert.Zero(t, clientip.ToUint32("garbage"))
}

func TestFromUint32(t *testing.T) {
	assert.Equal(t, "127.0.0.1", clientip.FromUint32(0x7f000001))
	assert.Equal(t, "192.168.1.1", clientip.FromUint32(0xc0a80101))
}

func TestRoundTrip(t *testing.T) {
	for _, ip := range []string{"10.1.2.3", "255.255.255.255", "0.0.0.1"} {
		assert.Equal(t, ip, clientip.FromUint32(clientip.ToUint32(ip)))
	}
}
