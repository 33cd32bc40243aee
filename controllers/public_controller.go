// Package controllers - read-only endpoints for spectators.
// File: controllers/public_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/game"
	"courtside/logger"
	"courtside/services"
)

// ---------------- Public Controller ----------------

// PublicController serves everything a spectator may read without
// logging in: the live record, the archive and the scoreboard QR code.
type PublicController struct {
	Engine    *game.Engine
	PublicURL string
}

// NewPublicController creates an instance of PublicController
func NewPublicController(engine *game.Engine, publicURL string) *PublicController {
	return &PublicController{Engine: engine, PublicURL: publicURL}
}

// Health is the load-balancer liveness probe.
func (pc *PublicController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CurrentMatch returns the live record. Polling clients use this as a
// fallback when the WebSocket is unavailable.
func (pc *PublicController) CurrentMatch(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Engine.Snapshot())
}

// ExportMatch downloads the live record as a JSON attachment.
func (pc *PublicController) ExportMatch(c *gin.Context) {
	snap := pc.Engine.Snapshot()
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.Error.Printf("ExportMatch: marshal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	filename := fmt.Sprintf("match_%s.json", time.Now().Format("2006-01-02_15-04-05"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", out)
}

// PastMatches lists the saved-match archive, newest first.
func (pc *PublicController) PastMatches(c *gin.Context) {
	matches, err := pc.Engine.PastMatches()
	if err != nil {
		logger.Error.Printf("PastMatches: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "archive unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// PastMatch fetches one archive entry.
func (pc *PublicController) PastMatch(c *gin.Context) {
	m, err := pc.Engine.PastMatch(c.Param("id"))
	if err != nil {
		logger.Error.Printf("PastMatch: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "archive unavailable"})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// QRCode renders a PNG linking to the public scoreboard.
func (pc *PublicController) QRCode(c *gin.Context) {
	png, err := services.GenerateQRCode(pc.PublicURL, 256)
	if err != nil {
		logger.Error.Printf("QRCode: generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "QR generation failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
