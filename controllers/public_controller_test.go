// file: controllers/public_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

func TestHealth(t *testing.T) {
	e, _ := newTestEngine(t)
	router := setupTestRouter(t)
	pc := NewPublicController(e, "http://localhost:8080")
	router.GET("/health", pc.Health)

	w := getPath(router, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentMatch_ReturnsLiveRecord(t *testing.T) {
	e, _ := newTestEngine(t)
	liveEngine(t, e)
	router := setupTestRouter(t)
	pc := NewPublicController(e, "http://localhost:8080")
	router.GET("/api/match", pc.CurrentMatch)

	w := getPath(router, "/api/match", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var m models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, models.StageMatch, m.Stage)
	assert.Equal(t, "Hawks", m.TeamA)
	assert.Len(t, m.TeamAPlaying, 5)
}

func TestExportMatch_DownloadsAttachment(t *testing.T) {
	e, _ := newTestEngine(t)
	liveEngine(t, e)
	router := setupTestRouter(t)
	pc := NewPublicController(e, "http://localhost:8080")
	router.GET("/api/match/export", pc.ExportMatch)

	w := getPath(router, "/api/match/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".json")

	var m models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "Hawks", m.TeamA)
}

func TestPastMatch_NotFound(t *testing.T) {
	e, _ := newTestEngine(t)
	router := setupTestRouter(t)
	pc := NewPublicController(e, "http://localhost:8080")
	router.GET("/api/past-matches/:id", pc.PastMatch)

	w := getPath(router, "/api/past-matches/match_nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPastMatches_ListsArchive(t *testing.T) {
	e, _ := newTestEngine(t)
	liveEngine(t, e)
	savedID, err := e.EndMatch(true)
	require.NoError(t, err)

	router := setupTestRouter(t)
	pc := NewPublicController(e, "http://localhost:8080")
	router.GET("/api/past-matches", pc.PastMatches)
	router.GET("/api/past-matches/:id", pc.PastMatch)

	w := getPath(router, "/api/past-matches", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []models.PastMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, savedID, resp.Matches[0].ID)

	w = getPath(router, "/api/past-matches/"+savedID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQRCode_ServesPNG(t *testing.T) {
	e, _ := newTestEngine(t)
	router := setupTestRouter(t)
	pc := NewPublicController(e, "https://scoreboard.example.com")
	router.GET("/qrcode", pc.QRCode)

	w := getPath(router, "/qrcode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}))
}
