// Package token generates opaque, collision-resistant tokens for session
// identification.
//
// Tokens are version-5 UUIDs derived from a random namespace and a random
// name, giving each token 256 bits of consumed entropy folded into the
// standard UUID string form. Tokens carry no embedded data and are only
// meaningful to the issuing process; they are intended to be hashed before
// storage so the raw value never lives server-side.
//
// Usage:
//
//	raw, err := token.Generate()
//	if err != nil {
//		// Entropy exhaustion is a fatal configuration error.
//		log.Fatal(err)
//	}
//
// The Generator type wraps Generate for dependency injection:
//
//	var src token.Generator
//	authenticator := auth.New(..., auth.WithTokenSource(src))
package token
