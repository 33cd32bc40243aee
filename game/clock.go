// Package game - game/clock.go
// The game clock decrements once per second in its own goroutine and
// flushes to the store every five elapsed seconds, or immediately at
// zero. Subscribers see every tick; the store sees the cadence.
// Pause, reset and quarter changes hand authority back to the stored
// value. A generation counter invalidates stale tickers, mirroring
// the timer-ID check the countdown timers in this codebase have always
// used.
package game

import (
	"time"

	"courtside/logger"
	"courtside/models"
)

// clockFlushSeconds is how many ticks may pass between store flushes.
const clockFlushSeconds = 5

// StartClock resumes the countdown. Play cannot resume while a foul
// warning is pending or the period clock sits at zero.
func (e *Engine) StartClock() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	if e.match.IsRunning {
		return nil
	}
	if e.match.FoulWarning != nil {
		return ErrFoulWarningActive
	}
	if e.match.TimeoutActive {
		return ErrTimeoutActive
	}
	if e.match.TimerSeconds <= 0 {
		return ErrPeriodExpired
	}

	e.startClockLocked()
	e.commitLocked(true)
	return nil
}

// startClockLocked flips the running flag and launches the countdown
// goroutine under a fresh generation.
func (e *Engine) startClockLocked() {
	e.match.IsRunning = true
	e.clockGen++
	go e.runClock(e.clockGen)
}

// PauseClock stops the countdown and flushes the current value, so
// the store regains authority over the remaining time.
func (e *Engine) PauseClock() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	e.stopClockLocked()
	e.commitLocked(true)
	return nil
}

// ResetClock stops the countdown and reloads the full period length.
func (e *Engine) ResetClock() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.match.Stage != models.StageMatch {
		return ErrWrongStage
	}
	e.stopClockLocked()
	e.match.TimerSeconds = e.match.QuarterDuration * 60
	e.commitLocked(true)
	return nil
}

// SetQuarterDuration switches the period length preset. Changing the
// preset stops the clock and reseeds the remaining time.
func (e *Engine) SetQuarterDuration(minutes int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !quarterPresets[minutes] {
		return ErrBadDuration
	}
	if e.match.IsOvertime {
		return ErrWrongStage
	}
	e.stopClockLocked()
	e.match.QuarterDuration = minutes
	e.match.TimerSeconds = minutes * 60
	e.commitLocked(true)
	return nil
}

// stopClockLocked halts the countdown goroutine via the generation
// counter. Safe to call when the clock is already stopped.
func (e *Engine) stopClockLocked() {
	e.match.IsRunning = false
	e.clockGen++
}

// runClock is the countdown loop for one clock generation.
func (e *Engine) runClock(gen int) {
	ticker := e.clock.NewTicker(time.Second)
	defer ticker.Stop()

	sinceFlush := 0
	for range ticker.Chan() {
		e.mu.Lock()
		if gen != e.clockGen || !e.match.IsRunning {
			e.mu.Unlock()
			return
		}

		if e.match.TimerSeconds > 0 {
			e.match.TimerSeconds--
		}
		sinceFlush++

		if e.match.TimerSeconds <= 0 {
			// single zero-trigger: stop here, never auto-advance
			e.match.TimerSeconds = 0
			e.match.IsRunning = false
			e.clockGen++
			e.commitLocked(true)
			logger.Info.Printf("[runClock] period clock expired (%s)", periodKey(e.match.Quarter, e.match.IsOvertime))
			e.noticeLocked("periodExpired", "period clock reached zero")
			e.mu.Unlock()
			return
		}

		flush := sinceFlush >= clockFlushSeconds
		e.commitLocked(flush)
		if flush {
			sinceFlush = 0
		}
		e.mu.Unlock()
	}
}
