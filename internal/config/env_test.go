package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Redis.Addr = "localhost:6379"

	require.NoError(t, applyEnvOverrides(cfg))

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	// Untouched fields keep their prior values.
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestApplyEnvOverrides_BadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	err := applyEnvOverrides(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}
