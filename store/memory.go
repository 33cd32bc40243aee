// File: store/memory.go
package store

import (
	"sort"
	"sync"

	"courtside/models"
)

// MemoryStore keeps everything in process memory. It backs tests and
// database-less development runs; state is lost on restart.
type MemoryStore struct {
	mu        sync.Mutex
	current   *models.Match
	past      map[string]models.PastMatch
	scheduled map[string]models.ScheduledMatch
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		past:      map[string]models.PastMatch{},
		scheduled: map[string]models.ScheduledMatch{},
	}
}

// SaveCurrent replaces the live record.
func (s *MemoryStore) SaveCurrent(m models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := m.Clone()
	s.current = &cp
	return nil
}

// LoadCurrent returns the live record, or nil when none was saved.
func (s *MemoryStore) LoadCurrent() (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, nil
	}
	cp := s.current.Clone()
	return &cp, nil
}

// SavePast appends one completed match.
func (s *MemoryStore) SavePast(m models.PastMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.past[m.ID] = m
	return nil
}

// ListPast returns the archive, newest first.
func (s *MemoryStore) ListPast() ([]models.PastMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PastMatch, 0, len(s.past))
	for _, m := range s.past {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

// GetPast fetches one archive entry, or nil when absent.
func (s *MemoryStore) GetPast(id string) (*models.PastMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.past[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// DeletePast removes one archive entry.
func (s *MemoryStore) DeletePast(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.past, id)
	return nil
}

// SaveScheduled inserts or replaces one fixture.
func (s *MemoryStore) SaveScheduled(m models.ScheduledMatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled[m.ID] = m
	return nil
}

// ListScheduled returns all fixtures, oldest first.
func (s *MemoryStore) ListScheduled() ([]models.ScheduledMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScheduledMatch, 0, len(s.scheduled))
	for _, m := range s.scheduled {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

// MarkLive transitions a fixture to the live state.
func (s *MemoryStore) MarkLive(id string, startedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.scheduled[id]
	if !ok {
		return nil
	}
	m.Status = models.ScheduleLive
	m.LiveStartedAt = startedAt
	s.scheduled[id] = m
	return nil
}

// MarkCompleted finalizes a fixture with its score.
func (s *MemoryStore) MarkCompleted(id string, scoreA, scoreB int, completedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.scheduled[id]
	if !ok {
		return nil
	}
	m.Status = models.ScheduleCompleted
	m.HasScore = true
	m.FinalScoreA = scoreA
	m.FinalScoreB = scoreB
	m.CompletedAt = completedAt
	s.scheduled[id] = m
	return nil
}
