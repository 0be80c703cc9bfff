package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing vars).
//
// Recognized variables:
//
//	RECIPEASY_ADDR                 bind address (e.g., ":8080")
//	RECIPEASY_DATABASE_DSN         PostgreSQL DSN
//	RECIPEASY_SECRET_KEY           JWT HMAC secret
//	RECIPEASY_TOKEN_VALIDITY_HOURS token lifetime, hours
//	SPOONACULAR_API_KEY            upstream recipe API key
//	SPOONACULAR_BASE_URL           upstream recipe API base URL
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RECIPEASY_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("RECIPEASY_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("RECIPEASY_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("RECIPEASY_TOKEN_VALIDITY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("SPOONACULAR_API_KEY"); v != "" {
		config.SpoonacularAPIKey = v
	}
	if v := os.Getenv("SPOONACULAR_BASE_URL"); v != "" {
		config.SpoonacularBaseURL = v
	}
}
