// file: game/clock_test.go
//go:build unit
// +build unit

package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/game"
	"courtside/models"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestClock_CountsDownOncePerSecond(t *testing.T) {
	e, _, fc, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)
	start := e.Snapshot().TimerSeconds

	fc.BlockUntil(1)
	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		return e.Snapshot().TimerSeconds == start-1
	}, waitFor, tick)

	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		return e.Snapshot().TimerSeconds == start-2
	}, waitFor, tick)
}

func TestPauseClock_StopsCountdown(t *testing.T) {
	e, _, fc, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	fc.BlockUntil(1)
	require.NoError(t, e.PauseClock())
	paused := e.Snapshot().TimerSeconds

	fc.Advance(2 * time.Second)
	assert.Never(t, func() bool {
		return e.Snapshot().TimerSeconds != paused
	}, 100*time.Millisecond, tick)
	assert.False(t, e.Snapshot().IsRunning)
}

func TestStartClock_Idempotent(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	// already running: a second start is a no-op, not an error
	assert.NoError(t, e.StartClock())
	assert.True(t, e.Snapshot().IsRunning)
}

func TestResetClock_ReloadsFullPeriod(t *testing.T) {
	e, _, fc, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)
	start := e.Snapshot().TimerSeconds

	fc.BlockUntil(1)
	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		return e.Snapshot().TimerSeconds == start-1
	}, waitFor, tick)

	require.NoError(t, e.ResetClock())
	snap := e.Snapshot()
	assert.Equal(t, snap.QuarterDuration*60, snap.TimerSeconds)
	assert.False(t, snap.IsRunning)
}

func TestSetQuarterDuration_PresetsOnly(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	assert.ErrorIs(t, e.SetQuarterDuration(7), game.ErrBadDuration)

	require.NoError(t, e.SetQuarterDuration(10))
	snap := e.Snapshot()
	assert.Equal(t, 10, snap.QuarterDuration)
	assert.Equal(t, 600, snap.TimerSeconds)
	assert.False(t, snap.IsRunning, "changing the preset stops the clock")
}

func TestClock_ExpiryFiresOnceAndStopsAtZero(t *testing.T) {
	e, msgr, fc, mem := newTestEngine(t)

	// persist a record two seconds from expiry with the clock running,
	// then recover it: restore resumes the countdown
	m := game.NewMatch()
	m.Stage = models.StageMatch
	m.IsRunning = true
	m.TimerSeconds = 2
	require.NoError(t, mem.SaveCurrent(*m))
	require.NoError(t, e.Restore())

	fc.BlockUntil(1)
	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		return e.Snapshot().TimerSeconds == 1
	}, waitFor, tick)

	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		snap := e.Snapshot()
		return snap.TimerSeconds == 0 && !snap.IsRunning
	}, waitFor, tick)
	assert.Equal(t, 1, msgr.noticeCount("periodExpired"))

	// the countdown is dead: more time changes nothing and the clock
	// refuses to restart at zero
	fc.Advance(3 * time.Second)
	assert.Never(t, func() bool {
		return e.Snapshot().TimerSeconds != 0
	}, 100*time.Millisecond, tick)
	assert.Equal(t, 1, msgr.noticeCount("periodExpired"))
	assert.ErrorIs(t, e.StartClock(), game.ErrPeriodExpired)
	assert.GreaterOrEqual(t, e.Snapshot().TimerSeconds, 0, "clock never goes negative")
}
