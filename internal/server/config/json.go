package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeasy/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Duration fields are expressed as integer hours to keep config files simple.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr        string `json:"endpoint_addr"`
	DatabaseDSN         string `json:"database_dsn"`
	SecretKey           string `json:"secret_key"`
	TokenValidityHours  int    `json:"token_validity_hours"`
	SpoonacularAPIKey   string `json:"spoonacular_api_key"`
	SpoonacularBaseURL  string `json:"spoonacular_base_url"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The lookup order for the JSON file path is:
//
//	The -c or -config command-line flags.
//	If it is not set, no JSON file is loaded.
//
// Only fields present in the file (non-zero after unmarshalling) are copied,
// so a partial JSON file does not wipe out defaults or environment values.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityHours != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityHours) * time.Hour
	}
	if c.SpoonacularAPIKey != "" {
		config.SpoonacularAPIKey = c.SpoonacularAPIKey
	}
	if c.SpoonacularBaseURL != "" {
		config.SpoonacularBaseURL = c.SpoonacularBaseURL
	}
}
