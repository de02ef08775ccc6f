package config

import (
	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServerBaseURL string `env:"TASKKEEPER_SERVER"`
	TokenFile     string `env:"TASKKEEPER_TOKEN_FILE"`
}

// parseEnv overlays configuration from environment variables. Unset
// variables leave the current values untouched.
func parseEnv(config *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.ServerBaseURL != "" {
		config.ServerBaseURL = e.ServerBaseURL
	}
	if e.TokenFile != "" {
		config.TokenFile = e.TokenFile
	}
}
