// Package controllers - fixture scheduling endpoints.
// File: controllers/schedule_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/game"
	"courtside/logger"
)

// ---------------- Schedule Controller ----------------

// ScheduleController manages pre-announced fixtures.
type ScheduleController struct {
	Engine *game.Engine
}

// NewScheduleController creates an instance of ScheduleController
func NewScheduleController(engine *game.Engine) *ScheduleController {
	return &ScheduleController{Engine: engine}
}

// CreateSchedule announces a fixture for the teams currently in setup.
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	var req struct {
		MatchType string `json:"matchType"`
		Court     string `json:"court"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		RoundType string `json:"roundType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := sc.Engine.ScheduleMatch(req.MatchType, req.Court, req.Date, req.Time, req.RoundType)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "scheduleId": id})
}

// ListSchedule returns all fixtures with their lifecycle state.
func (sc *ScheduleController) ListSchedule(c *gin.Context) {
	fixtures, err := sc.Engine.ListScheduled()
	if err != nil {
		logger.Error.Printf("ListSchedule: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "schedule unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": fixtures})
}
