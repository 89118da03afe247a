package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DatabaseURL   string
	DatabaseName  string
	Port          string
	SessionSecret string
}

// Load reads the configuration from environment variables.
// ATLASDB_URL is required; everything else has a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("ATLASDB_URL"),
		DatabaseName:  os.Getenv("DB_NAME"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: ATLASDB_URL is required")
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "wonderlust"
	}
	if cfg.Port == "" {
		cfg.Port = "3030"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-session-secret"
	}
	return cfg, nil
}
