package token_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/pkg/token"
)

func TestGenerate_Format(t *testing.T) {
	raw, err := token.Generate()
	require.NoError(t, err)

	parsed, err := uuid.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestGenerate_Unique(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for range n {
		raw, err := token.Generate()
		require.NoError(t, err)

		_, dup := seen[raw]
		require.False(t, dup, "duplicate token generated: %s", raw)
		seen[raw] = struct{}{}
	}
}

func TestGenerator_Generate(t *testing.T) {
	var src token.Generator

	first, err := src.Generate()
	require.NoError(t, err)

	second, err := src.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
