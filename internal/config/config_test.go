package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "DATABASE_URL", "HTTP_PORT", "DELAY_SCALE", "SESSION_TTL_MINUTES", "DEFAULT_USER_NAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromEnv()
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "travel_planner.db", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "Anish", cfg.DefaultUserName)
	assert.Equal(t, 1.0, cfg.DelayScale)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "bolt")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DELAY_SCALE", "0")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("RECENT_CONVERSATIONS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 0.0, cfg.DelayScale)
	assert.Equal(t, 5, cfg.SessionTTLMinutes)
	assert.Equal(t, 2, cfg.RecentConversations)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=DEBUG\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	LoadConfig()
	assert.Equal(t, "DEBUG", AppConfig.LogLevel)
}
