package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 16, cfg.Engine.MaxInFlight)
	assert.Equal(t, 2*time.Second, cfg.Engine.ListenerTimeout)
	assert.Equal(t, 128*1024, cfg.Engine.CopyBufferSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PERCH_MAX_IN_FLIGHT", "4")
	t.Setenv("PERCH_LISTENER_TIMEOUT", "500ms")
	t.Setenv("PERCH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Engine.MaxInFlight)
	assert.Equal(t, 500*time.Millisecond, cfg.Engine.ListenerTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("PERCH_MAX_IN_FLIGHT", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("PERCH_MAX_IN_FLIGHT", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 16, cfg.Engine.MaxInFlight)
}
