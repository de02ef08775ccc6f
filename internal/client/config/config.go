// Package config loads runtime configuration for the TaskKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the TaskKeeper CLI.
type Config struct {
	// ServerBaseURL is the base URL of the backend HTTP API.
	ServerBaseURL string
	// TokenFile is where the auth token is persisted between runs.
	TokenFile string
}

// LoadDefaults populates c with sensible defaults. The token file goes
// into the user's home directory when one can be resolved.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"

	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	c.TokenFile = filepath.Join(dir, ".taskkeeper_token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
