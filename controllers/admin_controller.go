// Package controllers provides HTTP handlers for scoring-console commands.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/game"
	"courtside/websocket"
)

// ---------------- Admin Controller ----------------

// AdminController exposes every match mutation the scoring console can
// issue. All writes funnel into the engine; the handlers only decode,
// delegate and map errors.
type AdminController struct {
	Engine *game.Engine
}

// NewAdminController initializes a new instance of AdminController
func NewAdminController(engine *game.Engine) *AdminController {
	return &AdminController{Engine: engine}
}

// timeCommand reports how long a scoring command took to apply.
func timeCommand() func() {
	start := time.Now()
	return func() {
		websocket.PublishCommandLatency(float64(time.Since(start).Milliseconds()))
	}
}

// ok answers a successful command with the new record version.
func (ac *AdminController) ok(c *gin.Context) {
	snap := ac.Engine.Snapshot()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": snap.Version})
}

// ---------------- stage commands ----------------

// BeginSetup moves from the menu into match setup.
func (ac *AdminController) BeginSetup(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.BeginSetup(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ProceedToSelectFive moves from setup to starting-five selection.
func (ac *AdminController) ProceedToSelectFive(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.ProceedToSelectFive(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// StartMatch begins live play with the selected fives.
func (ac *AdminController) StartMatch(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.StartMatch(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// BackToSetup abandons five-selection or live play and returns to setup.
func (ac *AdminController) BackToSetup(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.BackToSetup(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ResetMatch throws the record away and returns to the menu.
func (ac *AdminController) ResetMatch(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.ResetMatch(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// EndMatch finishes the game, optionally archiving it first.
func (ac *AdminController) EndMatch(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Save bool `json:"save"`
	}
	_ = c.ShouldBindJSON(&req)

	savedID, err := ac.Engine.EndMatch(req.Save)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "savedId": savedID})
}

// ---------------- team & roster commands ----------------

// SetTeamName renames one side during setup.
func (ac *AdminController) SetTeamName(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Side string `json:"side"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.SetTeamName(req.Side, req.Name); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// AddPlayer registers a roster entry.
func (ac *AdminController) AddPlayer(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Team   string `json:"team"`
		Name   string `json:"name"`
		Jersey string `json:"jersey"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := ac.Engine.AddPlayer(req.Team, req.Name, req.Jersey)
	if err != nil {
		writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "playerId": id})
}

// DeletePlayer removes a roster entry.
func (ac *AdminController) DeletePlayer(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.DeletePlayer(c.Param("id")); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// TogglePlaying adds or removes a player from the starting five.
func (ac *AdminController) TogglePlaying(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Team     string `json:"team"`
		PlayerID string `json:"playerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.TogglePlayingPlayer(req.Team, req.PlayerID); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// Substitute swaps an on-court player for a bench player.
func (ac *AdminController) Substitute(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Team string `json:"team"`
		Out  string `json:"out"`
		In   string `json:"in"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.Substitute(req.Team, req.Out, req.In); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ---------------- score & foul commands ----------------

// AddPoints credits a made basket to a player.
func (ac *AdminController) AddPoints(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		PlayerID string `json:"playerId"`
		Points   int    `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.AddPoints(req.PlayerID, req.Points); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// UndoPoints reverses a scoring mistake.
func (ac *AdminController) UndoPoints(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		PlayerID string `json:"playerId"`
		Points   int    `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.UndoPoints(req.PlayerID, req.Points); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// AddFoul charges a personal foul.
func (ac *AdminController) AddFoul(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.AddFoul(req.PlayerID); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// UndoFoul reverses a foul entered by mistake.
func (ac *AdminController) UndoFoul(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.UndoFoul(req.PlayerID); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ---------------- clock & period commands ----------------

// StartClock resumes the period countdown.
func (ac *AdminController) StartClock(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.StartClock(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// PauseClock stops the period countdown.
func (ac *AdminController) PauseClock(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.PauseClock(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ResetClock rewinds the period clock to the full duration.
func (ac *AdminController) ResetClock(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.ResetClock(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// SetQuarterDuration changes the regulation period length.
func (ac *AdminController) SetQuarterDuration(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Minutes int `json:"minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.SetQuarterDuration(req.Minutes); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// AdvanceQuarter snapshots the period score and moves to the next period.
func (ac *AdminController) AdvanceQuarter(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.AdvanceQuarter(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// StartOvertime begins an extra period when the game is tied.
func (ac *AdminController) StartOvertime(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.StartOvertime(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ---------------- timeout commands ----------------

// RequestTimeout charges a timeout to a team and starts the 60s clock.
func (ac *AdminController) RequestTimeout(c *gin.Context) {
	defer timeCommand()()
	var req struct {
		Team string `json:"team"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := ac.Engine.RequestTimeout(req.Team); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// EndTimeout resumes play before the timeout clock runs out.
func (ac *AdminController) EndTimeout(c *gin.Context) {
	defer timeCommand()()
	if err := ac.Engine.EndTimeout(); err != nil {
		writeCommandError(c, err)
		return
	}
	ac.ok(c)
}

// ---------------- archive commands ----------------

// DeletePastMatch removes a saved match from the archive.
func (ac *AdminController) DeletePastMatch(c *gin.Context) {
	if err := ac.Engine.DeletePastMatch(c.Param("id")); err != nil {
		writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
