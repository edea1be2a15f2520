package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOST", "PORT", "LOG_LEVEL", "STORAGE_TYPE", "SQLITE_PATH",
	"REDIS_URL", "CATALOG_PATH", "RESET_TIMEZONE",
}

// clearEnv unsets every variable the config reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StorageSQLite, cfg.StorageType)
	assert.Equal(t, "data/rebirth.db", cfg.SQLitePath)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, slog.LevelInfo, cfg.Level())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CATALOG_PATH", "config/rebirth.yml")
	t.Setenv("RESET_TIMEZONE", "UTC")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, StorageRedis, cfg.StorageType)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "config/rebirth.yml", cfg.CatalogPath)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "eighty"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"unknown storage", map[string]string{"STORAGE_TYPE": "postgres"}},
		{"redis without url", map[string]string{"STORAGE_TYPE": "redis"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "chatty"}},
		{"unknown timezone", map[string]string{"RESET_TIMEZONE": "Mars/Olympus_Mons"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadReadsDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9191\nSTORAGE_TYPE=memory\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageType)
}

func TestLoadEnvironmentWinsOverDotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9191\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadIgnoresMissingDotenv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := &Config{LogLevel: ""}
	assert.Equal(t, slog.LevelInfo, cfg.Level())

	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}
