package clientip

import (
	"encoding/binary"
	"net"
	"net/http"
	"strings"
)

// Proxy headers checked in priority order. The most trustworthy sources
// (CDN-injected headers) come first.
var headerPriority = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request, checking proxy
// headers in priority order before falling back to RemoteAddr. Returned
// addresses are validated and normalized; malformed header values are
// silently skipped. If no valid IP can be determined the raw RemoteAddr is
// returned as-is.
func GetIP(r *http.Request) string {
	for _, header := range headerPriority {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may contain a chain: "client, proxy1, proxy2".
		// The leftmost entry is the original client.
		if header == "X-Forwarded-For" {
			for part := range strings.SplitSeq(value, ",") {
				if ip := normalize(strings.TrimSpace(part)); ip != "" {
					return ip
				}
			}
			continue
		}

		if ip := normalize(strings.TrimSpace(value)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// ToUint32 encodes an IPv4 address as an unsigned integer for compact
// storage, matching the classic ip2long encoding. IPv6 and invalid
// addresses encode as 0.
func ToUint32(ip string) uint32 {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return 0
	}
	v4 := parsed.To4()
	if v4 == nil {
		return 0
	}
	return binary.BigEndian.Uint32(v4)
}

// FromUint32 decodes an ip2long-encoded address back to dotted-quad form.
func FromUint32(n uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], n)
	return net.IPv4(b[0], b[1], b[2], b[3]).String()
}

// normalize validates an IP string and returns its canonical form, or ""
// when the value is not a usable client address.
func normalize(value string) string {
	ip := net.ParseIP(value)
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
