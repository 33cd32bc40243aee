// Package controllers handles scorer authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"courtside/logger"
	"courtside/services"
)

// Lockout policy: repeated failures from one address block further
// attempts for the window.
const (
	maxLoginAttempts = 5
	lockoutWindow    = 5 * time.Minute
)

// AuthController authenticates the scoring console.
type AuthController struct {
	PasswordHash string
	Console      services.ConsoleServiceInterface

	mu       sync.Mutex
	failures map[string][]time.Time // client IP -> recent failed attempts
}

// NewAuthController creates an AuthController around the configured
// bcrypt password hash.
func NewAuthController(passwordHash string, console services.ConsoleServiceInterface) *AuthController {
	return &AuthController{
		PasswordHash: passwordHash,
		Console:      console,
		failures:     make(map[string][]time.Time),
	}
}

// checkPasswordHash verifies the plain-text password against the stored bcrypt hash.
func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login authenticates the scorer, enforces the lockout window and
// claims the scoring-console seat for this session.
func (ac *AuthController) Login(c *gin.Context) {
	ip := c.ClientIP()
	if ac.lockedOut(ip) {
		logger.Warn.Printf("Login: %s locked out after repeated failures", ip)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many failed attempts, try again later"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and password are required"})
		return
	}
	if req.Name == "" {
		req.Name = "scorer"
	}

	if !checkPasswordHash(req.Password, ac.PasswordHash) {
		ac.recordFailure(ip)
		logger.Warn.Printf("Login: invalid password from %s", ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}
	ac.clearFailures(ip)

	session := sessions.Default(c)
	session.Set("scorer", req.Name)
	if err := session.Save(); err != nil {
		logger.Error.Println("Login: failed to save session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again"})
		return
	}

	// One console seat: the first device in gets to score, later logins
	// can watch and take over once the seat is released.
	consoleHeld := true
	if err := ac.Console.Claim(req.Name); err != nil {
		logger.Warn.Printf("Login: %s authenticated but console is held: %v", req.Name, err)
		consoleHeld = false
	}

	logger.Info.Printf("Login: scorer '%s' authenticated from %s (consoleHeld=%v)", req.Name, ip, consoleHeld)
	c.JSON(http.StatusOK, gin.H{"name": req.Name, "consoleHeld": consoleHeld})
}

// Logout releases the console seat and clears the session.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if name, ok := session.Get("scorer").(string); ok {
		_ = ac.Console.Release(name)
	}
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Println("Logout: failed to save session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// ClaimConsole lets an authenticated session take a vacated seat.
func (ac *AuthController) ClaimConsole(c *gin.Context) {
	session := sessions.Default(c)
	name, _ := session.Get("scorer").(string)
	if err := ac.Console.Claim(name); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consoleHeld": true})
}

// ---------------- lockout bookkeeping ----------------

func (ac *AuthController) lockedOut(ip string) bool {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return len(ac.recentFailuresLocked(ip)) >= maxLoginAttempts
}

func (ac *AuthController) recordFailure(ip string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.failures[ip] = append(ac.recentFailuresLocked(ip), time.Now())
}

func (ac *AuthController) clearFailures(ip string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	delete(ac.failures, ip)
}

// recentFailuresLocked prunes attempts older than the window.
func (ac *AuthController) recentFailuresLocked(ip string) []time.Time {
	cutoff := time.Now().Add(-lockoutWindow)
	var recent []time.Time
	for _, t := range ac.failures[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	ac.failures[ip] = recent
	return recent
}
