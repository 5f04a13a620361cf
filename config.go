package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the CLI, all overridable through
// environment variables or an optional .env file.
type Config struct {
	DBPath   string
	LogLevel string
}

// LoadConfig reads an optional .env file and resolves settings with defaults.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		DBPath:   env("LIBRARY_DB_PATH", "library.db"),
		LogLevel: env("LIBRARY_LOG_LEVEL", "info"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
