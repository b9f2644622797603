package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
  mode: release
backend:
  base_url: https://api.qrlinx.dev
  timeout: 5s
database:
  sql:
    driver: mysql
    dsn: user:pass@tcp(localhost:3306)/qrlinx
display:
  timezone: UTC
  recent_limit: 5
`)
		c, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, c.Server.Port)
		assert.Equal(t, "release", c.Server.Mode)
		assert.Equal(t, "https://api.qrlinx.dev", c.Backend.BaseURL)
		assert.Equal(t, 5*time.Second, c.Backend.Timeout)
		assert.Equal(t, "mysql", c.Database.SQL.Driver)
		assert.Equal(t, 5, c.Display.RecentLimit)
		assert.Equal(t, time.UTC, c.Display.Location())
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 8080, c.Server.Port)
		assert.Equal(t, "postgres", c.Database.SQL.Driver)
		assert.Equal(t, 15*time.Second, c.Backend.Timeout)
		assert.Equal(t, 10, c.Display.RecentLimit)
		assert.Equal(t, "link_events", c.RocketMQ.Topic)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("QRLINX_BACKEND_BASE_URL", "https://env.qrlinx.dev")
		path := writeConfig(t, "backend:\n  base_url: https://file.qrlinx.dev\n")

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.qrlinx.dev", c.Backend.BaseURL)
	})

	t.Run("expands placeholder secrets", func(t *testing.T) {
		t.Setenv("TEST_ANON_KEY", "anon-123")
		path := writeConfig(t, "supabase:\n  anon_key: ${TEST_ANON_KEY}\n")

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "anon-123", c.Supabase.AnonKey)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		path := writeConfig(t, "database:\n  sql:\n    driver: oracle\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [port\n")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestDisplayConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, DisplayConfig{}.Location())
	assert.Equal(t, time.Local, DisplayConfig{Timezone: "local"}.Location())
	assert.Equal(t, time.Local, DisplayConfig{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, time.UTC, DisplayConfig{Timezone: "UTC"}.Location())
}
