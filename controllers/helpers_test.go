// file: controllers/helpers_test.go
//go:build unit
// +build unit

package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"courtside/game"
	"courtside/store"
)

// setupTestRouter creates a Gin engine with session middleware and a
// helper route that mints an authenticated scorer session.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	sessionStore := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", sessionStore))

	router.GET("/test-login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("scorer", "scorer")
		_ = session.Save()
		c.Status(http.StatusOK)
	})
	return router
}

// loginCookies mints an authenticated scorer session.
func loginCookies(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test-login", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

// newTestEngine returns an engine backed by the in-memory store.
func newTestEngine(t *testing.T) (*game.Engine, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	e := game.NewEngine(mem, mem, mem, nil, clockwork.NewFakeClock())
	return e, mem
}

// liveEngine drives an engine into the live match stage and returns the
// team A player ids.
func liveEngine(t *testing.T, e *game.Engine) []string {
	t.Helper()
	require.NoError(t, e.BeginSetup())
	require.NoError(t, e.SetTeamName("A", "Hawks"))
	require.NoError(t, e.SetTeamName("B", "Tigers"))

	var idsA []string
	for i := 0; i < 5; i++ {
		idA, err := e.AddPlayer("A", fmt.Sprintf("Hawk %d", i+1), fmt.Sprintf("%d", i+4))
		require.NoError(t, err)
		idsA = append(idsA, idA)
		_, err = e.AddPlayer("B", fmt.Sprintf("Tiger %d", i+1), fmt.Sprintf("%d", i+4))
		require.NoError(t, err)
	}
	require.NoError(t, e.ProceedToSelectFive())
	snap := e.Snapshot()
	for id, p := range snap.Players {
		require.NoError(t, e.TogglePlayingPlayer(p.Team, id))
	}
	require.NoError(t, e.StartMatch())
	return idsA
}

// postJSON performs a JSON POST and returns the recorder.
func postJSON(router *gin.Engine, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
