// Package game - game/engine.go
package game

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"courtside/logger"
	"courtside/models"
)

// Messenger pushes state changes out to subscribers. The engine never
// talks to a transport directly.
type Messenger interface {
	// BroadcastSnapshot sends the full record; consumers use Version
	// to drop anything they have already seen.
	BroadcastSnapshot(m models.Match)
	// BroadcastNotice sends a short out-of-band event (period expired,
	// foul warning, store trouble).
	BroadcastNotice(event, message string)
}

// MatchStore persists the live record so a restart recovers the match.
type MatchStore interface {
	SaveCurrent(m models.Match) error
	LoadCurrent() (*models.Match, error)
}

// ArchiveStore is the append-only list of saved completed matches.
type ArchiveStore interface {
	SavePast(m models.PastMatch) error
	ListPast() ([]models.PastMatch, error)
	GetPast(id string) (*models.PastMatch, error)
	DeletePast(id string) error
}

// ScheduleStore holds pre-announced fixtures.
type ScheduleStore interface {
	SaveScheduled(s models.ScheduledMatch) error
	ListScheduled() ([]models.ScheduledMatch, error)
	MarkLive(id string, startedAt int64) error
	MarkCompleted(id string, scoreA, scoreB int, completedAt int64) error
}

// Engine owns the live match record. Every command locks, validates,
// mutates, bumps the version counter, publishes a snapshot and flushes
// to the store. Clients never write fields directly.
type Engine struct {
	mu        sync.Mutex
	match     *models.Match
	store     MatchStore
	archive   ArchiveStore
	schedule  ScheduleStore
	messenger Messenger
	clock     clockwork.Clock

	// generation counters invalidate stale countdown goroutines
	clockGen   int
	timeoutGen int
}

// NewEngine wires the engine with its collaborators. A nil clock
// defaults to the real one; a nil store leaves the engine memory-only.
func NewEngine(store MatchStore, archive ArchiveStore, schedule ScheduleStore, messenger Messenger, clock clockwork.Clock) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{
		match:     NewMatch(),
		store:     store,
		archive:   archive,
		schedule:  schedule,
		messenger: messenger,
		clock:     clock,
	}
}

// Restore loads the persisted record, if any, and resumes the game
// clock when the match was saved mid-period with the clock running.
func (e *Engine) Restore() error {
	if e.store == nil {
		return nil
	}
	saved, err := e.store.LoadCurrent()
	if err != nil {
		return err
	}
	if saved == nil {
		logger.Info.Println("[Restore] no persisted match record, starting from defaults")
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	normalize(saved)
	e.match = saved
	logger.Info.Printf("[Restore] recovered match record version=%d stage=%s", saved.Version, saved.Stage)
	if e.match.IsRunning {
		e.startClockLocked()
	}
	return nil
}

// normalize repairs nil maps/slices on records loaded from storage.
func normalize(m *models.Match) {
	if m.Players == nil {
		m.Players = map[string]models.Player{}
	}
	if m.TeamAPlaying == nil {
		m.TeamAPlaying = []string{}
	}
	if m.TeamBPlaying == nil {
		m.TeamBPlaying = []string{}
	}
	if m.QuarterScores == nil {
		m.QuarterScores = map[string]models.QuarterScore{}
	}
	if m.Timeouts == nil {
		m.Timeouts = defaultTimeouts()
	}
	// a timeout countdown does not survive a restart
	m.TimeoutActive = false
	m.TimeoutSecondsLeft = 0
	m.TimeoutTeam = ""
}

// Snapshot returns a deep copy of the live record.
func (e *Engine) Snapshot() models.Match {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.match.Clone()
}

// ---------------- commit / flush plumbing ----------------

// commitLocked finishes a mutation: version bump, timestamp, snapshot
// broadcast, and (optionally) a store flush. Callers hold e.mu.
func (e *Engine) commitLocked(flush bool) {
	e.match.Version++
	e.match.LastUpdated = e.clock.Now().UnixMilli()
	snap := e.match.Clone()
	if e.messenger != nil {
		e.messenger.BroadcastSnapshot(snap)
	}
	if flush {
		e.flushLocked(snap)
	}
}

// flushLocked writes the record to the store. Failures are logged and
// surfaced as a notice; the in-memory record stays authoritative and
// the next commit simply re-attempts the write.
func (e *Engine) flushLocked(snap models.Match) {
	if e.store == nil {
		return
	}
	if err := e.store.SaveCurrent(snap); err != nil {
		logger.Error.Printf("[flush] failed to persist match record: %v", err)
		e.noticeLocked("storeError", "live record could not be persisted")
	}
}

func (e *Engine) noticeLocked(event, message string) {
	if e.messenger != nil {
		e.messenger.BroadcastNotice(event, message)
	}
}

// ---------------- team & roster commands ----------------

// SetTeamName renames side "A" or "B" during setup.
func (e *Engine) SetTeamName(side, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSetup {
		return ErrWrongStage
	}
	if !validTeam(side) {
		return ErrBadTeam
	}
	name = strings.TrimSpace(name)
	if side == "A" {
		e.match.TeamA = name
	} else {
		e.match.TeamB = name
	}
	e.commitLocked(true)
	return nil
}

// AddPlayer registers a roster entry and returns its id.
func (e *Engine) AddPlayer(team, name, jersey string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSetup {
		return "", ErrWrongStage
	}
	if !validTeam(team) {
		return "", ErrBadTeam
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(jersey) == "" {
		return "", ErrBadPlayer
	}

	id := "player_" + uuid.NewString()
	e.match.Players[id] = models.Player{
		Name:   strings.TrimSpace(name),
		Jersey: strings.TrimSpace(jersey),
		Team:   team,
	}
	logger.Info.Printf("[AddPlayer] %s #%s registered for team %s", name, jersey, team)
	e.commitLocked(true)
	return id, nil
}

// DeletePlayer removes a roster entry. A player currently on court
// must be substituted off first so the playing five stays intact.
func (e *Engine) DeletePlayer(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.match.Players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	if contains(e.match.PlayingFive(p.Team), id) && e.match.Stage == models.StageMatch {
		return ErrPlayerOnCourt
	}

	delete(e.match.Players, id)
	e.match.TeamAPlaying = remove(e.match.TeamAPlaying, id)
	e.match.TeamBPlaying = remove(e.match.TeamBPlaying, id)
	e.recomputeScoreLocked(p.Team)
	e.commitLocked(true)
	return nil
}

// ---------------- schedule commands ----------------

// ScheduleMatch records a fixture for the teams currently in setup and
// links the live record to it.
func (e *Engine) ScheduleMatch(matchType, court, date, timeOfDay, roundType string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSetup {
		return "", ErrWrongStage
	}
	if e.match.TeamA == "" || e.match.TeamB == "" || date == "" || timeOfDay == "" {
		return "", ErrBadSchedule
	}

	id := "schedule_" + uuid.NewString()
	fixture := models.ScheduledMatch{
		ID:        id,
		TeamA:     e.match.TeamA,
		TeamB:     e.match.TeamB,
		MatchType: matchType,
		Court:     court,
		Date:      date,
		Time:      timeOfDay,
		RoundType: roundType,
		Status:    models.ScheduleUpcoming,
		CreatedAt: e.clock.Now().UnixMilli(),
	}
	if e.schedule != nil {
		if err := e.schedule.SaveScheduled(fixture); err != nil {
			logger.Error.Printf("[ScheduleMatch] failed to save fixture: %v", err)
			return "", err
		}
	}

	e.match.ScheduleID = id
	e.match.MatchType = matchType
	e.match.Court = court
	e.match.ScheduledDate = date
	e.match.ScheduledTime = timeOfDay
	e.match.RoundType = roundType
	e.commitLocked(true)
	return id, nil
}

// ListScheduled returns all fixtures.
func (e *Engine) ListScheduled() ([]models.ScheduledMatch, error) {
	if e.schedule == nil {
		return nil, nil
	}
	return e.schedule.ListScheduled()
}

// ---------------- archive commands ----------------

// PastMatches returns the saved-match archive, newest first.
func (e *Engine) PastMatches() ([]models.PastMatch, error) {
	if e.archive == nil {
		return nil, nil
	}
	return e.archive.ListPast()
}

// PastMatch fetches one archive entry.
func (e *Engine) PastMatch(id string) (*models.PastMatch, error) {
	if e.archive == nil {
		return nil, nil
	}
	return e.archive.GetPast(id)
}

// DeletePastMatch removes an archive entry.
func (e *Engine) DeletePastMatch(id string) error {
	if e.archive == nil {
		return nil
	}
	return e.archive.DeletePast(id)
}

// ---------------- small helpers ----------------

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
