// File: store/archive.go
package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"courtside/models"
)

// ArchiveRepo is the append-only saved-match archive.
type ArchiveRepo struct {
	db *sql.DB
}

// NewArchiveRepo returns the archive repository.
func NewArchiveRepo(db *sql.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

// SavePast appends one completed match.
func (r *ArchiveRepo) SavePast(m models.PastMatch) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO past_matches (id, doc, saved_at) VALUES ($1, $2, $3)`,
		m.ID, doc, m.Timestamp)
	return err
}

// ListPast returns the archive, newest first.
func (r *ArchiveRepo) ListPast() ([]models.PastMatch, error) {
	rows, err := r.db.Query(`SELECT doc FROM past_matches ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PastMatch
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var m models.PastMatch
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetPast fetches one archive entry, or nil when absent.
func (r *ArchiveRepo) GetPast(id string) (*models.PastMatch, error) {
	var doc []byte
	err := r.db.QueryRow(`SELECT doc FROM past_matches WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m models.PastMatch
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeletePast removes one archive entry.
func (r *ArchiveRepo) DeletePast(id string) error {
	_, err := r.db.Exec(`DELETE FROM past_matches WHERE id = $1`, id)
	return err
}
