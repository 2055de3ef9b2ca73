package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	PrefsDriver    string // "sqlite" or "postgres"
	PrefsDSN       string // file path for sqlite, connection URL for postgres
	SeedCount      int
	SimulateDelays bool
	AllowedOrigins string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually doesn't exist; system
	// environment variables are used instead.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		PrefsDriver:    os.Getenv("PREFS_DRIVER"),
		PrefsDSN:       os.Getenv("PREFS_DSN"),
		SeedCount:      5000,
		SimulateDelays: true,
		AllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PrefsDriver == "" {
		cfg.PrefsDriver = "sqlite"
	}
	if cfg.PrefsDSN == "" {
		cfg.PrefsDSN = "./data/preferences.db"
	}
	if s := os.Getenv("SEED_COUNT"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.SeedCount = v
		}
	}
	if s := os.Getenv("SIMULATE_DELAYS"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			cfg.SimulateDelays = v
		}
	}

	return cfg, nil
}
