package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/config"
	"github.com/dmitrymomot/storekit/pkg/store"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := store.DefaultConfig()
	assert.Equal(t, "store", cfg.Name)
	assert.Zero(t, cfg.ActionRate)
	assert.Equal(t, 1, cfg.ActionBurst)
	assert.Zero(t, cfg.MaxReactions)
	assert.Equal(t, 5*time.Second, cfg.DrainTimeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Parallel()

		cfg, err := store.ConfigFromEnv("COUNTER_", config.WithEnvironment(map[string]string{
			"COUNTER_NAME":          "counter",
			"COUNTER_ACTION_RATE":   "50",
			"COUNTER_ACTION_BURST":  "5",
			"COUNTER_MAX_REACTIONS": "8",
			"COUNTER_DRAIN_TIMEOUT": "250ms",
			"OTHER_NAME":            "ignored",
		}))
		require.NoError(t, err)

		assert.Equal(t, store.Config{
			Name:         "counter",
			ActionRate:   50,
			ActionBurst:  5,
			MaxReactions: 8,
			DrainTimeout: 250 * time.Millisecond,
		}, cfg)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := store.ConfigFromEnv("EMPTY_", config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, store.DefaultConfig(), cfg)
	})

	t.Run("normalizes out of range values", func(t *testing.T) {
		t.Parallel()

		cfg, err := store.ConfigFromEnv("BAD_", config.WithEnvironment(map[string]string{
			"BAD_ACTION_RATE":   "-1",
			"BAD_ACTION_BURST":  "0",
			"BAD_MAX_REACTIONS": "-3",
			"BAD_DRAIN_TIMEOUT": "0s",
		}))
		require.NoError(t, err)
		assert.Equal(t, store.DefaultConfig(), cfg)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Parallel()

		_, err := store.ConfigFromEnv("MALFORMED_", config.WithEnvironment(map[string]string{
			"MALFORMED_DRAIN_TIMEOUT": "soon",
		}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestConfigFromEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("STORETEST_NAME", "from-env")
	t.Setenv("STORETEST_ACTION_RATE", "2.5")

	cfg, err := store.ConfigFromEnv("STORETEST_")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
	assert.InDelta(t, 2.5, cfg.ActionRate, 0.0001)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	cfg := store.DefaultConfig()
	cfg.Name = "configured"

	s := start(t, newBuilder(demoReactor()).WithOptions(store.WithConfig(cfg)))
	assert.Equal(t, "configured", s.Name())

	s.Send(bump)
	require.Eventually(t, func() bool { return s.State().Count == 1 }, waitFor, tick)
}
