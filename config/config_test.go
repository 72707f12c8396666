package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, ":3000", cfg.ProxyAddress)
	assert.Equal(t, "http://localhost:8000/generate", cfg.GenerateTargetURL)
	assert.Equal(t, 15*time.Second, cfg.RelayTimeout())
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	contents := "SERVER_ADDRESS: \":9100\"\nGENERATE_TARGET_URL: \"http://backend:9100/generate\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ServerAddress)
	assert.Equal(t, "http://backend:9100/generate", cfg.GenerateTargetURL)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, ":3000", cfg.ProxyAddress)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("PROXY_ADDRESS", ":4000")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.ProxyAddress)
}

func TestLoadConfigRejectsBadTargetURL(t *testing.T) {
	viper.Reset()
	t.Setenv("GENERATE_TARGET_URL", "not-a-url")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfigRejectsZeroTimeout(t *testing.T) {
	viper.Reset()
	t.Setenv("RELAY_TIMEOUT_SECONDS", "0")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
