package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://crypto-portfolio-tracker-backend.onrender.com", c.ServerURL)
	assert.Empty(t, c.HealthAddr)
	assert.Equal(t, "session.db", c.StorePath)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Zero(t, c.StoreWatchInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "session.db", cfg.StorePath)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_url": "http://from-file:8080",
		"store_path": "file.db",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://from-flag:9090"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-flag:9090", cfg.ServerURL)
	assert.Equal(t, "file.db", cfg.StorePath)
}

func TestLoadConfig_KeepsSubSecondDurationsFromFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"request_timeout = \"1500ms\"\nstore_watch_interval = \"500ms\"\n"), 0o600))
	os.Args = []string{"testbin", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.StoreWatchInterval)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_ExplicitIntervalFlagOverridesFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "client.toml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout = \"1500ms\"\n"), 0o600))
	os.Args = []string{"testbin", "-c", path, "-t", "4"}

	cfg := LoadConfig()

	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
}
