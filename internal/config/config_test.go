package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photogallery/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoadPath(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
http:
  port: "8081"
storage:
  driver: "pgx"
  dsn: "postgres://u:p@localhost:5432/db"
cache:
  kind: "redis"
  ttl: 30s
redis:
  redis_addr: "cache:6379"
  redis_db: 2
`)

	cfg := config.MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "pgx", cfg.Storage.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Storage.DSN)
	assert.Equal(t, "redis", cfg.Cache.Kind)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "cache:6379", cfg.Redis.RedisAddr)
	assert.Equal(t, 2, cfg.Redis.RedisDB)
}

func TestMustLoadPath_Defaults(t *testing.T) {
	cfg := config.MustLoadPath(writeConfig(t, "env: local\n"))

	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
	assert.Equal(t, "./gallery.db", cfg.Storage.DSN)
	assert.Equal(t, "memory", cfg.Cache.Kind)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestMustLoadPath_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("CACHE_KIND", "none")

	cfg := config.MustLoadPath(writeConfig(t, "http:\n  port: \"8081\"\n"))

	assert.Equal(t, "9999", cfg.HTTP.Port)
	assert.Equal(t, "none", cfg.Cache.Kind)
}

func TestMustLoadEnv(t *testing.T) {
	t.Setenv("STORAGE_DSN", "/tmp/other.db")

	cfg := config.MustLoadEnv()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.DSN)
}

func TestMustLoadPath_MissingFile(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
