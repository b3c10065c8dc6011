package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/core/config"
)

type serverConfig struct {
	Host string `env:"TEST_CFG_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_CFG_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_MISSING_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_Cached(t *testing.T) {
	var first serverConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not affect the
	// cached value.
	t.Setenv("TEST_CFG_HOST", "example.com")

	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseFailed)
}

func TestLoad_NilTarget(t *testing.T) {
	var cfg *serverConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
