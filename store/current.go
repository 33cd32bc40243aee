// File: store/current.go
package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"courtside/models"
)

// CurrentMatchRepo persists the live record as a single JSONB row.
type CurrentMatchRepo struct {
	db *sql.DB
}

// NewCurrentMatchRepo returns the live-record repository.
func NewCurrentMatchRepo(db *sql.DB) *CurrentMatchRepo {
	return &CurrentMatchRepo{db: db}
}

// SaveCurrent replaces the live record wholesale.
func (r *CurrentMatchRepo) SaveCurrent(m models.Match) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO live_match (id, doc, version, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = $1, version = $2, updated_at = now()`,
		doc, int64(m.Version))
	return err
}

// LoadCurrent returns the persisted record, or nil when none exists.
func (r *CurrentMatchRepo) LoadCurrent() (*models.Match, error) {
	var doc []byte
	err := r.db.QueryRow(`SELECT doc FROM live_match WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m models.Match
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
