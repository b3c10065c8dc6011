// Package cookie provides HTTP cookie management with HMAC signing.
//
// The Manager signs cookie values with HMAC-SHA256 so clients cannot forge
// or tamper with them. Multiple secrets are supported for key rotation: the
// first secret signs new cookies while all secrets are accepted during
// verification, letting old cookies survive a rotation window.
//
// Basic usage:
//
//	manager, err := cookie.New([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Signed values
//	err = manager.SetSigned(w, "auth_token", token, cookie.WithMaxAge(3600))
//	token, err := manager.GetSigned(r, "auth_token")
//
// Defaults are secure: Path=/, HttpOnly, SameSite=Lax. Individual calls can
// override them with functional options.
//
// The Transport type narrows the manager to a single named cookie with the
// has/get/set/delete surface consumed by authentication flows:
//
//	transport := cookie.NewTransport(manager, "auth_token")
//	err = transport.Set(w, token, time.Now().Add(30*24*time.Hour))
package cookie
