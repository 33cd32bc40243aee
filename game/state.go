// Package game holds the single-writer engine that owns the live
// match record. All mutations happen under one mutex, so the
// lost-update races of a shared-document design cannot occur here.
// File: game/state.go
package game

import (
	"fmt"

	"courtside/models"
)

// Rule constants.
const (
	FoulLimit      = 5 // fifth foul disqualifies
	PlayersOnCourt = 5

	DefaultQuarterMinutes = 12
	OvertimeMinutes       = 3
	MaxOvertimePeriods    = 5
	regulationTimeouts    = 2 // per team, Q1-Q3
	fourthQuarterTimeouts = 4
	overtimeTimeouts      = 1 // per OT period, seeded when the period starts
	timeoutClockSeconds   = 60
)

// quarterPresets are the selectable regulation period lengths.
var quarterPresets = map[int]bool{5: true, 8: true, 10: true, 12: true, 15: true}

// NewMatch returns the default live record: menu stage, empty rosters,
// regulation clock and timeout allotments.
func NewMatch() *models.Match {
	return &models.Match{
		Quarter:         1,
		QuarterDuration: DefaultQuarterMinutes,
		TimerSeconds:    DefaultQuarterMinutes * 60,
		Stage:           models.StageMenu,
		Players:         map[string]models.Player{},
		TeamAPlaying:    []string{},
		TeamBPlaying:    []string{},
		QuarterScores: map[string]models.QuarterScore{
			"q1": {}, "q2": {}, "q3": {}, "q4": {},
		},
		Timeouts: defaultTimeouts(),
	}
}

func defaultTimeouts() map[string]map[string]int {
	perTeam := func() map[string]int {
		return map[string]int{
			"q1": regulationTimeouts,
			"q2": regulationTimeouts,
			"q3": regulationTimeouts,
			"q4": fourthQuarterTimeouts,
		}
	}
	return map[string]map[string]int{"teamA": perTeam(), "teamB": perTeam()}
}

// periodKey maps a quarter number to its snapshot/timeout key:
// q1..q4 in regulation, ot1.. in overtime.
func periodKey(quarter int, overtime bool) string {
	if overtime || quarter > 4 {
		return fmt.Sprintf("ot%d", quarter-4)
	}
	return fmt.Sprintf("q%d", quarter)
}

// teamKey maps the "A"/"B" side to the timeout-ledger key.
func teamKey(team string) string {
	if team == "A" {
		return "teamA"
	}
	return "teamB"
}

func validTeam(team string) bool {
	return team == "A" || team == "B"
}
