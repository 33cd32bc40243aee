// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"courtside/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures the request carries an authenticated scorer
// session. The API is JSON-only, so failures answer 401 rather than
// redirecting to a login page.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("scorer")

	if user == nil {
		logger.Warn.Printf("AuthRequired: no scorer in session for %s %s", c.Request.Method, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	logger.Debug.Println("[AuthRequired] scorer authenticated - proceeding with request")
	c.Next()
}
