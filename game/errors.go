// Package game - game/errors.go
package game

import "errors"

// Precondition violations are rejected before any store write and map
// to 4xx responses at the HTTP surface.
var (
	ErrWrongStage        = errors.New("operation not allowed in the current match stage")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrBadTeam           = errors.New("team side must be A or B")
	ErrBadPlayer         = errors.New("player name and jersey number are required")
	ErrWrongTeam         = errors.New("player belongs to the other team")
	ErrPlayerFouledOut   = errors.New("player has fouled out and must be substituted")
	ErrFoulWarningActive = errors.New("a foul warning is pending; substitute before resuming play")
	ErrNeedFivePlayers   = errors.New("each team needs at least 5 registered players")
	ErrFiveOnCourt       = errors.New("maximum 5 players can be on court")
	ErrNotOnCourt        = errors.New("player is not on court")
	ErrAlreadyOnCourt    = errors.New("player is already on court")
	ErrPlayerOnCourt     = errors.New("player is on court; substitute before removing")
	ErrNoTimeouts        = errors.New("no timeouts remaining for this period")
	ErrTimeoutActive     = errors.New("a timeout is already in progress")
	ErrNotTied           = errors.New("game is not tied; no overtime needed")
	ErrBadQuarter        = errors.New("invalid quarter transition")
	ErrBadDuration       = errors.New("quarter duration must be one of 5, 8, 10, 12 or 15 minutes")
	ErrBadPointValue     = errors.New("points must be 1, 2 or 3")
	ErrPeriodExpired     = errors.New("period clock is at zero; reset it or advance the quarter")
	ErrBadSchedule       = errors.New("team names, date and time are required to schedule a match")
)
