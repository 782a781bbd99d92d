package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CATBASE_TRANSPORT", "CATBASE_PORT", "CATBASE_LOG_LEVEL", "CATBASE_LOG_FORMAT",
		"CATBASE_REDIS_ADDR", "CATBASE_REDIS_PASSWORD", "CATBASE_REDIS_DB", "CATBASE_CONFIG",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.RedisAddr)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATBASE_TRANSPORT", "http")
	t.Setenv("CATBASE_PORT", "8080")
	t.Setenv("CATBASE_REDIS_ADDR", "localhost:6379")
	t.Setenv("CATBASE_REDIS_DB", "2")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestFromEnv_FileOverlayWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATBASE_PORT", "8080")

	path := filepath.Join(t.TempDir(), "catbase.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"transport": "http",
		"port": "9090",
		"log": {"level": "debug", "format": "text"},
		"redis": {"addr": "redis:6379", "db": 3}
	}`), 0o600))
	t.Setenv("CATBASE_CONFIG", path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "9090", cfg.Port, "file value wins over env")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestFromEnv_InvalidFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "catbase.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))
	t.Setenv("CATBASE_CONFIG", path)

	_, err := FromEnv()
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestValidate(t *testing.T) {
	cfg := Config{Transport: "carrier-pigeon"}
	assert.ErrorContains(t, cfg.Validate(), "unsupported transport")

	cfg = Config{Transport: TransportHTTP}
	assert.ErrorContains(t, cfg.Validate(), "port is required")

	cfg = Config{Transport: TransportStdio}
	assert.NoError(t, cfg.Validate())
}
