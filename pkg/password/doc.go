// Package password provides bcrypt hashing for caller-side credential
// preparation.
//
// The authentication core never hashes raw passwords itself; it compares
// precomputed hashes supplied by the caller. This package is the supplied
// hash function for applications that don't already have one:
//
//	hash, err := password.Hash("s3cret-passphrase")
//	if err != nil {
//		return err
//	}
//	_, err = authenticator.CreateCredentials(ctx, email, hash)
//
// Note that bcrypt embeds a random salt, so two hashes of the same password
// differ. Lookups by (email, hash) equality therefore require storing the
// hash produced at registration and comparing with Verify, not re-hashing.
package password
