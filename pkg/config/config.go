// Package config reads runtime configuration from the environment, with a
// local .env file as fallback for development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GoogleMapsAPIKey string
}

// Load resolves configuration. Real environment variables win over .env
// entries; a missing .env file is not an error.
func Load() Config {
	envFile, _ := godotenv.Read(".env")

	return Config{
		GoogleMapsAPIKey: valueFor("GOOGLE_MAPS_API_KEY", envFile),
	}
}

func valueFor(key string, envFile map[string]string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return envFile[key]
}
