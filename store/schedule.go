// File: store/schedule.go
package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"courtside/models"
)

// ScheduleRepo holds pre-announced fixtures.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo returns the fixtures repository.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// SaveScheduled inserts or replaces one fixture.
func (r *ScheduleRepo) SaveScheduled(s models.ScheduledMatch) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO scheduled_matches (id, doc, status, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET doc = $2, status = $3`,
		s.ID, doc, s.Status, s.CreatedAt)
	return err
}

// ListScheduled returns all fixtures, oldest first.
func (r *ScheduleRepo) ListScheduled() ([]models.ScheduledMatch, error) {
	rows, err := r.db.Query(`SELECT doc FROM scheduled_matches ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ScheduledMatch
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var s models.ScheduledMatch
		if err := json.Unmarshal(doc, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MarkLive transitions a fixture to the live state.
func (r *ScheduleRepo) MarkLive(id string, startedAt int64) error {
	s, err := r.get(id)
	if err != nil || s == nil {
		return err
	}
	s.Status = models.ScheduleLive
	s.LiveStartedAt = startedAt
	return r.SaveScheduled(*s)
}

// MarkCompleted finalizes a fixture with its score.
func (r *ScheduleRepo) MarkCompleted(id string, scoreA, scoreB int, completedAt int64) error {
	s, err := r.get(id)
	if err != nil || s == nil {
		return err
	}
	s.Status = models.ScheduleCompleted
	s.HasScore = true
	s.FinalScoreA = scoreA
	s.FinalScoreB = scoreB
	s.CompletedAt = completedAt
	return r.SaveScheduled(*s)
}

func (r *ScheduleRepo) get(id string) (*models.ScheduledMatch, error) {
	var doc []byte
	err := r.db.QueryRow(`SELECT doc FROM scheduled_matches WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.ScheduledMatch
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
