// Package config loads the backend configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the backend.
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	TokenLifetime time.Duration
}

// Load reads the configuration from a .env file if one exists and from
// environment variables otherwise.
func Load() Config {
	// The .env file is optional, environment variables alone are fine
	// (e.g. in containers)
	_ = godotenv.Load()

	lifetimeDays, err := strconv.Atoi(getEnv("TOKEN_LIFETIME_DAYS", "30"))
	if err != nil || lifetimeDays <= 0 {
		lifetimeDays = 30
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "data/spendwise.db"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		TokenLifetime: time.Duration(lifetimeDays) * 24 * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
