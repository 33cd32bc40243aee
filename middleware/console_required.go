// File: middleware/console_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"courtside/logger"
	"courtside/services"
)

// -------------- console-seat middleware --------------

// ConsoleHolderRequired ensures the logged-in scorer currently holds
// the scoring-console seat before allowing match mutations. This keeps
// two logged-in devices from issuing commands at the same time.
func ConsoleHolderRequired(console services.ConsoleServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		user, _ := session.Get("scorer").(string)

		holder := console.Holder()
		if holder == "" || holder != user {
			logger.Warn.Printf("ConsoleHolderRequired: '%s' tried to score but '%s' holds the console", user, holder)
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "scoring console is held by another device"})
			return
		}
		c.Next()
	}
}
