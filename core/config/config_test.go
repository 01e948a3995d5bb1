package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"meeting-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "https://api.calendly.com", cfg.Calendly.BaseURL)
	assert.Equal(t, 100, cfg.Calendly.PageSize)
	assert.Equal(t, 4, cfg.Retry.MaxAttempts)
	assert.Equal(t, 2.0, cfg.Retry.BackoffFactor)
	assert.True(t, cfg.Retry.Jitter)
	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, 300, cfg.Sync.IntervalSeconds)
	assert.Equal(t, 4, cfg.Reconcile.Workers)
	assert.Equal(t, 330, cfg.Query.UTCOffsetMinutes)
	assert.False(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Nats.Enabled())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CALENDLY_PAT", "secret-token")
	t.Setenv("SYNC_INTERVAL_SECONDS", "60")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("QUERY_UTC_OFFSET_MINUTES", "0")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret-token", cfg.Calendly.PAT)
	assert.Equal(t, 60, cfg.Sync.IntervalSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 0, cfg.Query.UTCOffsetMinutes)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CALENDLY_PAT=from-dotenv\nRECONCILE_WORKERS=8\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("CALENDLY_PAT")
		os.Unsetenv("RECONCILE_WORKERS")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Calendly.PAT)
	assert.Equal(t, 8, cfg.Reconcile.Workers)
}
