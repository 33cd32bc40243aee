// file: middleware/auth_test.go
//go:build unit
// +build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/middleware"
)

// newSessionRouter builds a router with session middleware and a helper
// route that logs a scorer in, so tests can mint authenticated cookies.
func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/test-login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("scorer", c.Query("name"))
		_ = session.Save()
		c.Status(http.StatusOK)
	})
	return router
}

// loginCookies returns session cookies for an authenticated scorer.
func loginCookies(t *testing.T, router *gin.Engine, name string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test-login?name="+name, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestAuthRequired_BlocksAnonymous(t *testing.T) {
	router := newSessionRouter()
	router.GET("/protected", middleware.AuthRequired, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login required")
}

func TestAuthRequired_AllowsScorerSession(t *testing.T) {
	router := newSessionRouter()
	router.GET("/protected", middleware.AuthRequired, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cookies := loginCookies(t, router, "scorer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
