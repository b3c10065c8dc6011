package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/core/auth"
)

func TestNewHashBinder_SaltTooShort(t *testing.T) {
	_, err := auth.NewHashBinder("short-salt")
	assert.ErrorIs(t, err, auth.ErrInvalidSalt)
}

func TestHashBinder_Deterministic(t *testing.T) {
	binder, err := auth.NewHashBinder(testSalt)
	require.NoError(t, err)

	first := binder.Hash("some-raw-token")
	second := binder.Hash("some-raw-token")
	assert.Equal(t, first, second, "same token and salt must rehash identically")
	assert.Len(t, first, 64, "hex-encoded SHA-256")
}

func TestHashBinder_DistinctTokens(t *testing.T) {
	binder, err := auth.NewHashBinder(testSalt)
	require.NoError(t, err)

	assert.NotEqual(t, binder.Hash("token-a"), binder.Hash("token-b"))
}

func TestHashBinder_SaltDependent(t *testing.T) {
	first, err := auth.NewHashBinder("first-salt-of-32-characters-long!!!")
	require.NoError(t, err)
	second, err := auth.NewHashBinder("second-salt-of-32-characters-long!!")
	require.NoError(t, err)

	assert.NotEqual(t, first.Hash("same-token"), second.Hash("same-token"),
		"hash must bind to the process salt, not the token alone")
}
