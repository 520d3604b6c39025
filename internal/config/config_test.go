package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with redis storage
		path := writeConfig(t, `
log-level: debug
log-file: /tmp/ttt.log
storage: redis
session-id: living-room
redis:
  host: cache
  port: "6380"
  db: 2
  session-ttl: 1h
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is picked up
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/ttt.log", conf.LogFile)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "living-room", conf.SessionID)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Falls back to defaults and environment without a file", func(t *testing.T) {
		// Given: no config file and a session id in the environment
		t.Setenv("TICTACTOE_SESSION_ID", "from-env")

		// When: loading a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "tictactoe.log", conf.LogFile)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "from-env", conf.SessionID)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "storage: [\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "redis:6379", (&Redis{Host: "redis", Port: "6379"}).GetRedisAddr())
	assert.Empty(t, (&Redis{Port: "6379"}).GetRedisAddr())
}
