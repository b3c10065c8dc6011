package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, password.Verify(hash, "correct horse battery staple"))

	err = password.Verify(hash, "wrong password")
	assert.ErrorIs(t, err, password.ErrMismatch)
}

func TestHash_TooShort(t *testing.T) {
	_, err := password.Hash("short")
	assert.ErrorIs(t, err, password.ErrTooShort)
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)

	second, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt hashes must carry distinct salts")
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("not-a-bcrypt-hash", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
