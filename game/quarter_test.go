// file: game/quarter_test.go
//go:build unit
// +build unit

package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/game"
	"courtside/models"
)

func TestAdvanceQuarter_SnapshotsScoreAtTransition(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	idsA, idsB := startLiveMatch(t, e, 5, 5)

	require.NoError(t, e.AddPoints(idsA[0], 3))
	require.NoError(t, e.AddPoints(idsB[0], 2))
	require.NoError(t, e.AdvanceQuarter())

	snap := e.Snapshot()
	assert.Equal(t, 2, snap.Quarter)
	assert.Equal(t, models.QuarterScore{TeamA: 3, TeamB: 2}, snap.QuarterScores["q1"])
	assert.Equal(t, snap.QuarterDuration*60, snap.TimerSeconds)
	assert.False(t, snap.IsRunning, "quarter break stops the clock")
	// running totals carry across periods
	assert.Equal(t, 3, snap.ScoreA)
	assert.Equal(t, 2, snap.ScoreB)
}

func TestAdvanceQuarter_AfterQ4RequiresTie(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	idsA, _ := startLiveMatch(t, e, 5, 5)

	for q := 1; q < 4; q++ {
		require.NoError(t, e.AdvanceQuarter())
	}
	require.Equal(t, 4, e.Snapshot().Quarter)

	require.NoError(t, e.AddPoints(idsA[0], 2))
	assert.ErrorIs(t, e.AdvanceQuarter(), game.ErrNotTied)

	require.NoError(t, e.UndoPoints(idsA[0], 2))
	require.NoError(t, e.AdvanceQuarter())

	snap := e.Snapshot()
	assert.True(t, snap.IsOvertime)
	assert.Equal(t, 5, snap.Quarter)
	assert.Equal(t, game.OvertimeMinutes, snap.QuarterDuration)
	assert.Equal(t, game.OvertimeMinutes*60, snap.TimerSeconds)
}

func TestStartOvertime_BeforeQ4Rejected(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	assert.ErrorIs(t, e.StartOvertime(), game.ErrBadQuarter)
}

func TestStartOvertime_SeedsOneTimeoutPerTeam(t *testing.T) {
	e, msgr, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	for q := 1; q <= 4; q++ {
		require.NoError(t, e.AdvanceQuarter())
	}

	assert.Equal(t, 1, e.TimeoutsRemaining("A"))
	assert.Equal(t, 1, e.TimeoutsRemaining("B"))
	assert.Equal(t, 1, msgr.noticeCount("overtime"))
	assert.Equal(t, models.QuarterScore{}, e.Snapshot().QuarterScores["q4"])
}

func TestOvertime_CapsAtFivePeriods(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	for q := 1; q < 4; q++ {
		require.NoError(t, e.AdvanceQuarter())
	}
	for ot := 1; ot <= game.MaxOvertimePeriods; ot++ {
		require.NoError(t, e.AdvanceQuarter(), fmt.Sprintf("overtime %d", ot))
	}
	require.Equal(t, 4+game.MaxOvertimePeriods, e.Snapshot().Quarter)

	assert.ErrorIs(t, e.AdvanceQuarter(), game.ErrBadQuarter)
}

func TestOvertime_PeriodKeysAccumulate(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	startLiveMatch(t, e, 5, 5)

	for q := 1; q <= 4; q++ {
		require.NoError(t, e.AdvanceQuarter())
	}
	require.NoError(t, e.AdvanceQuarter()) // finishes ot1, starts ot2

	snap := e.Snapshot()
	assert.Contains(t, snap.QuarterScores, "ot1")
	assert.Equal(t, 6, snap.Quarter)
	assert.ErrorIs(t, e.SetQuarterDuration(12), game.ErrWrongStage, "presets are regulation-only")
}
