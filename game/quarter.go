// Package game - game/quarter.go
package game

import (
	"courtside/logger"
	"courtside/models"
)

// AdvanceQuarter moves to the next period. The running score is
// snapshotted into the finished period's key before the clock resets,
// so the snapshot for the current quarter always equals the score at
// the instant of transition. Advancing past Q4 requires a tie and
// enters overtime.
func (e *Engine) AdvanceQuarter() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	if e.match.Quarter >= 4 || e.match.IsOvertime {
		return e.startOvertimeLocked()
	}

	e.snapshotPeriodLocked()
	e.stopClockLocked()
	e.match.Quarter++
	e.match.TimerSeconds = e.match.QuarterDuration * 60
	logger.Info.Printf("[AdvanceQuarter] quarter %d started", e.match.Quarter)
	e.commitLocked(true)
	return nil
}

// StartOvertime begins the next overtime period: 3-minute clock and
// one fresh timeout per team. Only a tied game goes to overtime.
func (e *Engine) StartOvertime() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	return e.startOvertimeLocked()
}

func (e *Engine) startOvertimeLocked() error {
	if e.match.Quarter < 4 {
		return ErrBadQuarter
	}
	if e.match.Quarter >= 4+MaxOvertimePeriods {
		return ErrBadQuarter
	}
	if e.match.ScoreA != e.match.ScoreB {
		return ErrNotTied
	}

	e.snapshotPeriodLocked()
	e.stopClockLocked()
	e.match.Quarter++
	e.match.IsOvertime = true
	e.match.QuarterDuration = OvertimeMinutes
	e.match.TimerSeconds = OvertimeMinutes * 60
	e.seedOvertimeTimeoutsLocked()
	logger.Info.Printf("[StartOvertime] overtime %d started", e.match.Quarter-4)
	e.noticeLocked("overtime", "game is tied, starting overtime")
	e.commitLocked(true)
	return nil
}

// snapshotPeriodLocked records the running score under the period key
// that is ending.
func (e *Engine) snapshotPeriodLocked() {
	key := periodKey(e.match.Quarter, e.match.IsOvertime)
	e.match.QuarterScores[key] = models.QuarterScore{
		TeamA: e.match.ScoreA,
		TeamB: e.match.ScoreB,
	}
}

// seedOvertimeTimeoutsLocked grants each team its overtime timeout
// allotment for the period just entered. Regulation arrays only cover
// q1..q4, so OT keys are created lazily.
func (e *Engine) seedOvertimeTimeoutsLocked() {
	key := periodKey(e.match.Quarter, true)
	for _, team := range []string{"teamA", "teamB"} {
		if e.match.Timeouts[team] == nil {
			e.match.Timeouts[team] = map[string]int{}
		}
		e.match.Timeouts[team][key] = overtimeTimeouts
	}
}
