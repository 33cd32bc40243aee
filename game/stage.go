// Package game - game/stage.go
// Stage machine: menu -> setup -> selectPlaying5 -> match, backward
// only via explicit go-back or reset.
package game

import (
	"github.com/google/uuid"

	"courtside/logger"
	"courtside/models"
)

// BeginSetup starts a fresh match workflow from the menu. Team names,
// rosters and any fixture link are cleared.
func (e *Engine) BeginSetup() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMenu {
		return ErrWrongStage
	}
	e.resetToDefaultsLocked()
	e.match.Stage = models.StageSetup
	logger.Info.Println("[BeginSetup] entering setup stage")
	e.commitLocked(true)
	return nil
}

// ProceedToSelectFive moves from setup to playing-five selection.
// Both teams need at least five registered players; previous
// selections are discarded.
func (e *Engine) ProceedToSelectFive() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSetup {
		return ErrWrongStage
	}
	var countA, countB int
	for _, p := range e.match.Players {
		if p.Team == "A" {
			countA++
		} else {
			countB++
		}
	}
	if countA < PlayersOnCourt || countB < PlayersOnCourt {
		return ErrNeedFivePlayers
	}

	e.match.TeamAPlaying = []string{}
	e.match.TeamBPlaying = []string{}
	e.match.Stage = models.StageSelectFive
	e.commitLocked(true)
	return nil
}

// TogglePlayingPlayer selects or deselects a player for the starting
// five during the selection stage.
func (e *Engine) TogglePlayingPlayer(team, playerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSelectFive {
		return ErrWrongStage
	}
	p, ok := e.match.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if p.Team != team {
		return ErrWrongTeam
	}

	playing := e.match.PlayingFive(team)
	if contains(playing, playerID) {
		playing = remove(playing, playerID)
	} else {
		if len(playing) >= PlayersOnCourt {
			return ErrFiveOnCourt
		}
		playing = append(playing, playerID)
	}
	if team == "A" {
		e.match.TeamAPlaying = playing
	} else {
		e.match.TeamBPlaying = playing
	}
	e.commitLocked(true)
	return nil
}

// StartMatch enters the live stage once both starting fives are
// complete. The game clock starts immediately and a linked fixture is
// flipped to live.
func (e *Engine) StartMatch() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSelectFive {
		return ErrWrongStage
	}
	if err := e.validateFiveLocked("A", e.match.TeamAPlaying); err != nil {
		return err
	}
	if err := e.validateFiveLocked("B", e.match.TeamBPlaying); err != nil {
		return err
	}

	e.match.Stage = models.StageMatch
	e.startClockLocked()
	logger.Info.Printf("[StartMatch] %s vs %s is live", e.match.TeamA, e.match.TeamB)

	if e.match.ScheduleID != "" && e.schedule != nil {
		if err := e.schedule.MarkLive(e.match.ScheduleID, e.clock.Now().UnixMilli()); err != nil {
			logger.Error.Printf("[StartMatch] failed to mark fixture live: %v", err)
		}
	}
	e.commitLocked(true)
	return nil
}

// validateFiveLocked checks a playing five is exactly five distinct
// ids, each referencing a player on the right team.
func (e *Engine) validateFiveLocked(team string, playing []string) error {
	if len(playing) != PlayersOnCourt {
		return ErrNeedFivePlayers
	}
	seen := map[string]bool{}
	for _, id := range playing {
		p, ok := e.match.Players[id]
		if !ok {
			return ErrPlayerNotFound
		}
		if p.Team != team {
			return ErrWrongTeam
		}
		if seen[id] {
			return ErrAlreadyOnCourt
		}
		seen[id] = true
	}
	return nil
}

// BackToSetup abandons the current playing-five selection (or pauses a
// live match) and returns to setup. Destructive confirmation is the
// caller's concern.
func (e *Engine) BackToSetup() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageSelectFive && e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	e.stopClockLocked()
	e.stopTimeoutLocked()
	e.match.TeamAPlaying = []string{}
	e.match.TeamBPlaying = []string{}
	e.match.FoulWarning = nil
	e.match.Stage = models.StageSetup
	e.commitLocked(true)
	return nil
}

// ResetMatch returns the record to menu defaults without archiving.
func (e *Engine) ResetMatch() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopClockLocked()
	e.stopTimeoutLocked()
	e.resetToDefaultsLocked()
	logger.Info.Println("[ResetMatch] live record reset to defaults")
	e.commitLocked(true)
	return nil
}

// EndMatch finishes the live match. With save=true a copy goes to the
// archive and a linked fixture is completed; either way the live
// record resets and the stage returns to menu. Returns the archive id
// when a copy was saved.
func (e *Engine) EndMatch(save bool) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return "", ErrWrongStage
	}

	var savedID string
	if save {
		// the archive copy is built on a clone so a failed save leaves
		// the live record untouched and the match can go on
		snap := e.match.Clone()
		key := periodKey(snap.Quarter, snap.IsOvertime)
		snap.QuarterScores[key] = models.QuarterScore{TeamA: snap.ScoreA, TeamB: snap.ScoreB}

		now := e.clock.Now()
		past := models.PastMatch{
			ID:            "match_" + uuid.NewString(),
			TeamA:         snap.TeamA,
			TeamB:         snap.TeamB,
			ScoreA:        snap.ScoreA,
			ScoreB:        snap.ScoreB,
			Quarter:       snap.Quarter,
			IsOvertime:    snap.IsOvertime,
			QuarterScores: snap.QuarterScores,
			Players:       snap.Players,
			TeamAPlaying:  snap.TeamAPlaying,
			TeamBPlaying:  snap.TeamBPlaying,
			Date:          now.Format("2006-01-02T15:04:05Z07:00"),
			Timestamp:     now.UnixMilli(),
		}
		if e.archive != nil {
			if err := e.archive.SavePast(past); err != nil {
				logger.Error.Printf("[EndMatch] failed to archive match: %v", err)
				return "", err
			}
		}
		savedID = past.ID

		if e.match.ScheduleID != "" && e.schedule != nil {
			if err := e.schedule.MarkCompleted(e.match.ScheduleID, snap.ScoreA, snap.ScoreB, now.UnixMilli()); err != nil {
				logger.Error.Printf("[EndMatch] failed to complete fixture: %v", err)
			}
		}
		logger.Info.Printf("[EndMatch] archived %s vs %s %d-%d as %s", snap.TeamA, snap.TeamB, snap.ScoreA, snap.ScoreB, savedID)
	}

	e.stopClockLocked()
	e.stopTimeoutLocked()
	e.resetToDefaultsLocked()
	e.commitLocked(true)
	return savedID, nil
}

// resetToDefaultsLocked replaces the record with defaults, keeping the
// version counter monotonic across resets.
func (e *Engine) resetToDefaultsLocked() {
	version := e.match.Version
	e.match = NewMatch()
	e.match.Version = version
}
