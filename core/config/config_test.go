package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/syncbus/core/config"
	"github.com/dmitrymomot/syncbus/pkg/broadcast"
)

type requiredConfig struct {
	Name string `env:"SYNCBUS_TEST_REQUIRED_NAME,required"`
}

type cachedConfig struct {
	Value string `env:"SYNCBUS_TEST_CACHED_VALUE" envDefault:"default"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg broadcast.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, broadcast.DefaultConfig(), cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("BROADCAST_CAPACITY", "32")
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg broadcast.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 32, cfg.Capacity)
	})

	t.Run("returns parse errors", func(t *testing.T) {
		t.Setenv("BROADCAST_CAPACITY", "many")
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg broadcast.Config
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: parse")
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))
	})

	t.Run("rejects nil target", func(t *testing.T) {
		var cfg *cachedConfig
		require.Error(t, config.Load(cfg))
	})
}

func TestLoad_Caching(t *testing.T) {
	t.Setenv("SYNCBUS_TEST_CACHED_VALUE", "first")
	config.Reset()
	t.Cleanup(config.Reset)

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("SYNCBUS_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be reused")

	config.Reset()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		assert.Panics(t, func() {
			config.MustLoad(&requiredConfig{})
		})
	})

	t.Run("loads on success", func(t *testing.T) {
		t.Setenv("SYNCBUS_TEST_REQUIRED_NAME", "bus")
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg requiredConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "bus", cfg.Name)
	})
}
