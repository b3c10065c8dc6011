// Package clientip extracts real client IP addresses from HTTP requests and
// encodes them for compact storage.
//
// The package handles proxy headers in priority order to determine the
// actual client address behind load balancers and CDNs:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost valid entry)
//  4. X-Real-IP (nginx and other proxies)
//  5. RemoteAddr (direct connection)
//
// All values are validated with net.ParseIP and normalized; the unspecified
// address 0.0.0.0 is rejected. GetIP never panics and always returns a
// string.
//
// ToUint32 and FromUint32 convert IPv4 addresses to and from the unsigned
// integer form used by session records, equivalent to the classic
// ip2long/long2ip pair. IPv6 addresses encode as 0 since the numeric column
// only fits 32 bits.
package clientip
