// Package store persists the live match record, the past-match
// archive and the fixture list in Postgres. Records are stored as
// JSONB documents; the engine is the only writer, so the rows are
// plain snapshots rather than normalized tables.
// File: store/postgres.go
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Config is the database connection configuration.
type Config struct {
	Host     string `env:"HOST" envDefault:""`
	Port     string `env:"PORT" envDefault:"5432"`
	Username string `env:"USERNAME" envDefault:"courtside"`
	Password string `env:"PASSWORD" envDefault:""`
	DBName   string `env:"NAME" envDefault:"courtside"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// Enabled reports whether a database host was configured at all; the
// service falls back to the in-memory store otherwise.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// NewPostgresDB opens and pings the configured database.
func NewPostgresDB(cfg Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DBName, cfg.Password, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
