// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the TaskKeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: data store connection string; the scheme selects the
//     backend (postgres://, mongodb://, memory://).
//   - SecretKey: HMAC secret for signing identity tokens (HS256). Must be
//     supplied out-of-band; an empty secret is a fatal startup condition.
//   - TokenValidityDuration: token lifetime. Zero means tokens never expire,
//     which matches the historical behavior of the API.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The secret has no
// default on purpose.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.DatabaseDSN = "memory://"
	c.SecretKey = ""
	c.TokenValidityDuration = 0
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("signing secret is not set")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
