package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.Client.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Client.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Client.Debounce)
	assert.Equal(t, "discard", cfg.Client.StaleResponses)
	assert.Equal(t, "memory", cfg.Catalog.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown stale policy", func(c *Config) { c.Client.StaleResponses = "newest" }},
		{"negative timeout", func(c *Config) { c.Client.Timeout = -time.Second }},
		{"negative debounce", func(c *Config) { c.Client.Debounce = -time.Millisecond }},
		{"relative base url", func(c *Config) { c.Client.BaseURL = "localhost:5000" }},
		{"unknown driver", func(c *Config) { c.Catalog.Driver = "redis" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestZapLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	assert.Equal(t, zapcore.DebugLevel, cfg.ZapLevel().Level())

	cfg.Log.Level = "bogus"
	assert.Equal(t, zapcore.InfoLevel, cfg.ZapLevel().Level())
}

func TestLoader_LoadFromBytes_Empty(t *testing.T) {
	cfg, err := NewLoader(nil).LoadFromBytes(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_LoadFromBytes_Overrides(t *testing.T) {
	source := `
server:
  addr: ":8080"
  static_dir: /srv/web
client:
  base_url: http://quotes.internal:8080
  timeout: 2s
  debounce: 150ms
  stale_responses: apply
catalog:
  driver: sqlite
  path: /var/lib/stocksuggest/catalog.db
log:
  level: debug
`
	cfg, err := NewLoader(nil).LoadFromBytes([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/srv/web", cfg.Server.StaticDir)
	assert.Equal(t, "http://quotes.internal:8080", cfg.Client.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 150*time.Millisecond, cfg.Client.Debounce)
	assert.Equal(t, "apply", cfg.Client.StaleResponses)
	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "/var/lib/stocksuggest/catalog.db", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoader_LoadFromBytes_PartialKeepsDefaults(t *testing.T) {
	cfg, err := NewLoader(nil).LoadFromBytes([]byte("client:\n  debounce: 100ms\n"))

	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Debounce)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.Client.BaseURL)
	assert.Equal(t, "discard", cfg.Client.StaleResponses)
}

func TestLoader_LoadFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unknown key", "client:\n  retries: 3\n"},
		{"bad duration", "client:\n  timeout: soon\n"},
		{"invalid value", "catalog:\n  driver: mongo\n"},
		{"not yaml", "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).LoadFromBytes([]byte(tt.source))
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadFromFile(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := NewLoader(nil).LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644))

		cfg, err := NewLoader(nil).LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0644))

		_, err := NewLoader(nil).LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
