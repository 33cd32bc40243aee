// Package config loads application settings from the environment.
// File: config/config.go
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"courtside/store"
)

// Config holds everything main needs to wire the service.
type Config struct {
	DB store.Config `envPrefix:"DB_"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	// PublicURL is what the QR code and export links point at.
	PublicURL     string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"courtside-dev-secret"`

	// ScorerPasswordHash is the bcrypt hash of the scoring-console
	// password. When empty, main generates a hash for the default
	// development password and logs a warning.
	ScorerPasswordHash string `env:"SCORER_PASSWORD_HASH" envDefault:""`

	Env            string `env:"APP_ENV" envDefault:"development"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
