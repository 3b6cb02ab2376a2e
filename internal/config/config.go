// Package config provides configuration management for stocksuggest.
// It handles loading the YAML config file, filling in defaults for anything
// the file leaves out, and validating the result.
package config

import (
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all stocksuggest configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Client  ClientConfig  `yaml:"client"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig controls the /search_stock endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// StaticDir holds the compiled browser bundle. Empty disables /static.
	StaticDir string `yaml:"static_dir"`
}

// ClientConfig controls the suggestion controller and its search client.
type ClientConfig struct {
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each search request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`

	// Debounce delays searches until typing pauses. Zero searches on
	// every keystroke.
	Debounce time.Duration `yaml:"debounce"`

	// StaleResponses is "discard" or "apply".
	StaleResponses string `yaml:"stale_responses"`
}

// CatalogConfig selects the symbol store.
type CatalogConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver"`

	// Path is the sqlite database file. Empty uses the data directory.
	Path string `yaml:"path"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`

	// File is where logs are written. Empty uses the data directory.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":5000",
		},
		Client: ClientConfig{
			BaseURL:        "http://127.0.0.1:5000",
			StaleResponses: "discard",
		},
		Catalog: CatalogConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Client.StaleResponses {
	case "discard", "apply":
	default:
		return fmt.Errorf("client.stale_responses must be \"discard\" or \"apply\", got %q", c.Client.StaleResponses)
	}

	if c.Client.Timeout < 0 {
		return fmt.Errorf("client.timeout must not be negative")
	}
	if c.Client.Debounce < 0 {
		return fmt.Errorf("client.debounce must not be negative")
	}

	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("client.base_url must be an absolute URL, got %q", c.Client.BaseURL)
	}

	switch c.Catalog.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("catalog.driver must be \"memory\" or \"sqlite\", got %q", c.Catalog.Driver)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// ZapLevel returns the configured log level, falling back to info.
func (c *Config) ZapLevel() zap.AtomicLevel {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	return zap.NewAtomicLevelAt(level)
}
