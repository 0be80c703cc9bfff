package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// expressed as integer seconds to keep config files simple. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr    string `json:"server_endpoint_addr"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	TokenFile             string `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The lookup order for the JSON file path is:
//
//	The -c or -config command-line flags.
//	If it is not set, no JSON file is loaded.
//
// Only fields present in the file (non-zero after unmarshalling) are copied,
// so a partial JSON file does not wipe out defaults. If the file cannot be
// read or contains invalid JSON, the function panics.
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeoutSeconds != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
