// Package game - game/timeouts.go
// Timeouts: 2 per team in Q1-Q3, 4 in Q4, 1 per overtime period. The
// timeout clock is an isolated 60-second countdown; it pauses the game
// clock but never touches the period time.
package game

import (
	"fmt"
	"time"

	"courtside/logger"
	"courtside/models"
)

// TimeoutsRemaining reports the current period's allotment for a team.
func (e *Engine) TimeoutsRemaining(team string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeoutsRemainingLocked(team)
}

func (e *Engine) timeoutsRemainingLocked(team string) int {
	key := periodKey(e.match.Quarter, e.match.IsOvertime)
	byPeriod := e.match.Timeouts[teamKey(team)]
	if byPeriod == nil {
		return 0
	}
	return byPeriod[key]
}

// RequestTimeout spends one timeout for the team, pauses the game
// clock and starts the 60-second timeout countdown.
func (e *Engine) RequestTimeout(team string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	if !validTeam(team) {
		return ErrBadTeam
	}
	if e.match.TimeoutActive {
		return ErrTimeoutActive
	}
	if e.timeoutsRemainingLocked(team) <= 0 {
		return ErrNoTimeouts
	}

	key := periodKey(e.match.Quarter, e.match.IsOvertime)
	e.match.Timeouts[teamKey(team)][key]--

	e.stopClockLocked()
	e.match.TimeoutActive = true
	e.match.TimeoutTeam = team
	e.match.TimeoutSecondsLeft = timeoutClockSeconds
	e.timeoutGen++
	go e.runTimeoutClock(e.timeoutGen)

	logger.Info.Printf("[RequestTimeout] team %s, %d remaining in %s", team, e.match.Timeouts[teamKey(team)][key], key)
	e.noticeLocked("timeoutStarted", fmt.Sprintf("timeout for team %s", team))
	e.commitLocked(true)
	return nil
}

// EndTimeout ends the timeout early. The game clock stays paused; the
// scorer restarts it explicitly.
func (e *Engine) EndTimeout() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.match.TimeoutActive {
		return ErrWrongStage
	}
	e.endTimeoutLocked()
	e.commitLocked(true)
	return nil
}

func (e *Engine) endTimeoutLocked() {
	e.stopTimeoutLocked()
	e.noticeLocked("timeoutEnded", "timeout ended")
}

// stopTimeoutLocked clears timeout state and kills the countdown
// goroutine. Safe to call when no timeout is running.
func (e *Engine) stopTimeoutLocked() {
	e.timeoutGen++
	e.match.TimeoutActive = false
	e.match.TimeoutTeam = ""
	e.match.TimeoutSecondsLeft = 0
}

// runTimeoutClock is the isolated timeout countdown. Ticks are pushed
// to subscribers but not flushed to the store; only the start and end
// of the timeout persist.
func (e *Engine) runTimeoutClock(gen int) {
	ticker := e.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.Chan() {
		e.mu.Lock()
		if gen != e.timeoutGen || !e.match.TimeoutActive {
			e.mu.Unlock()
			return
		}

		if e.match.TimeoutSecondsLeft > 0 {
			e.match.TimeoutSecondsLeft--
		}
		if e.match.TimeoutSecondsLeft <= 0 {
			e.endTimeoutLocked()
			e.commitLocked(true)
			e.mu.Unlock()
			return
		}
		e.commitLocked(false)
		e.mu.Unlock()
	}
}
