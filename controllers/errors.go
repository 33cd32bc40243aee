// Package controllers provides the HTTP handlers of the scoring API.
// File: controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/game"
	"courtside/logger"
)

// writeCommandError maps an engine error onto an HTTP response.
// Rule conflicts (wrong stage, pending foul warning, exhausted
// timeouts) answer 409 so the console can tell "you can't do that now"
// apart from "you sent garbage".
func writeCommandError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, game.ErrWrongStage),
		errors.Is(err, game.ErrFoulWarningActive),
		errors.Is(err, game.ErrTimeoutActive),
		errors.Is(err, game.ErrNoTimeouts),
		errors.Is(err, game.ErrNotTied),
		errors.Is(err, game.ErrPeriodExpired),
		errors.Is(err, game.ErrPlayerFouledOut),
		errors.Is(err, game.ErrPlayerOnCourt),
		errors.Is(err, game.ErrFiveOnCourt):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrBadTeam),
		errors.Is(err, game.ErrBadPlayer),
		errors.Is(err, game.ErrWrongTeam),
		errors.Is(err, game.ErrNotOnCourt),
		errors.Is(err, game.ErrAlreadyOnCourt),
		errors.Is(err, game.ErrNeedFivePlayers),
		errors.Is(err, game.ErrBadQuarter),
		errors.Is(err, game.ErrBadDuration),
		errors.Is(err, game.ErrBadPointValue),
		errors.Is(err, game.ErrBadSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error.Printf("[writeCommandError] unexpected engine error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage failure, command not persisted"})
	}
}
