package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields
// are pointers so an absent key leaves the current value untouched.
type JsonConfig struct {
	ServerBaseURL *string `json:"server_base_url"`
	TokenFile     *string `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c/-config flags; when no path is given the
// function is a no-op. Read or unmarshal errors panic, matching the
// other config stages.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.TokenFile != nil {
		cfg.TokenFile = *jc.TokenFile
	}
}
