// main.go
package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"courtside/config"
	"courtside/controllers"
	"courtside/game"
	"courtside/logger"
	"courtside/middleware"
	"courtside/services"
	"courtside/store"
	"courtside/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.SetLogLevel(cfg.Env)

	if cfg.MetricsEnabled {
		websocket.EnableMetrics()
	}

	// Storage: Postgres when configured, otherwise a volatile in-memory
	// store so a laptop can run a match with no database.
	var (
		matchStore    game.MatchStore
		archiveStore  game.ArchiveStore
		scheduleStore game.ScheduleStore
	)
	if cfg.DB.Enabled() {
		db, err := store.NewPostgresDB(cfg.DB)
		if err != nil {
			logger.Error.Fatalf("Failed to connect to Postgres: %v", err)
		}
		if err := store.RunMigrations(db); err != nil {
			logger.Error.Fatalf("Failed to run migrations: %v", err)
		}
		matchStore = store.NewCurrentMatchRepo(db)
		archiveStore = store.NewArchiveRepo(db)
		scheduleStore = store.NewScheduleRepo(db)
		logger.Info.Println("Postgres storage enabled")
	} else {
		mem := store.NewMemoryStore()
		matchStore, archiveStore, scheduleStore = mem, mem, mem
		logger.Warn.Println("DB_HOST not set; using in-memory storage, state is lost on restart")
	}

	// WebSocket fan-out and the engine that feeds it.
	hub := websocket.NewHub()
	go hub.Run()

	engine := game.NewEngine(matchStore, archiveStore, scheduleStore, websocket.NewHubMessenger(hub), nil)
	if err := engine.Restore(); err != nil {
		logger.Error.Fatalf("Failed to restore persisted match: %v", err)
	}

	passwordHash := cfg.ScorerPasswordHash
	if passwordHash == "" {
		// Development fallback so a fresh checkout runs out of the box.
		hash, err := bcrypt.GenerateFromPassword([]byte("courtside"), bcrypt.DefaultCost)
		if err != nil {
			logger.Error.Fatalf("Failed to generate fallback password hash: %v", err)
		}
		passwordHash = string(hash)
		logger.Warn.Println("SCORER_PASSWORD_HASH not set; using default password 'courtside' - do not run a tournament like this")
	}

	console := services.NewConsoleService()
	authController := controllers.NewAuthController(passwordHash, console)
	adminController := controllers.NewAdminController(engine)
	publicController := controllers.NewPublicController(engine, cfg.PublicURL)
	scheduleController := controllers.NewScheduleController(engine)

	router := gin.Default()

	// Initialize session store
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // one tournament day
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("courtside_session", sessionStore))

	// Public routes: health, live record, archive, fixtures, QR code
	// and the spectator WebSocket.
	router.GET("/health", publicController.Health)
	router.GET("/api/match", publicController.CurrentMatch)
	router.GET("/api/match/export", publicController.ExportMatch)
	router.GET("/api/past-matches", publicController.PastMatches)
	router.GET("/api/past-matches/:id", publicController.PastMatch)
	router.GET("/api/schedule", scheduleController.ListSchedule)
	router.GET("/qrcode", publicController.QRCode)
	router.GET("/match-updates", func(c *gin.Context) {
		websocket.ServeWs(hub, engine, c.Writer, c.Request)
	})

	// Auth routes.
	router.POST("/api/login", authController.Login)
	router.POST("/api/logout", authController.Logout)

	// Scorer routes: authenticated session plus the console seat.
	scorer := router.Group("/api", middleware.AuthRequired)
	{
		scorer.POST("/console/claim", authController.ClaimConsole)

		commands := scorer.Group("/", middleware.ConsoleHolderRequired(console))
		{
			commands.POST("/match/setup", adminController.BeginSetup)
			commands.POST("/match/select-five", adminController.ProceedToSelectFive)
			commands.POST("/match/start", adminController.StartMatch)
			commands.POST("/match/back-to-setup", adminController.BackToSetup)
			commands.POST("/match/reset", adminController.ResetMatch)
			commands.POST("/match/end", adminController.EndMatch)

			commands.POST("/teams/name", adminController.SetTeamName)
			commands.POST("/players", adminController.AddPlayer)
			commands.DELETE("/players/:id", adminController.DeletePlayer)
			commands.POST("/players/toggle-playing", adminController.TogglePlaying)
			commands.POST("/players/substitute", adminController.Substitute)

			commands.POST("/score/add", adminController.AddPoints)
			commands.POST("/score/undo", adminController.UndoPoints)
			commands.POST("/fouls/add", adminController.AddFoul)
			commands.POST("/fouls/undo", adminController.UndoFoul)

			commands.POST("/clock/start", adminController.StartClock)
			commands.POST("/clock/pause", adminController.PauseClock)
			commands.POST("/clock/reset", adminController.ResetClock)
			commands.POST("/clock/duration", adminController.SetQuarterDuration)
			commands.POST("/quarter/advance", adminController.AdvanceQuarter)
			commands.POST("/quarter/overtime", adminController.StartOvertime)

			commands.POST("/timeouts/request", adminController.RequestTimeout)
			commands.POST("/timeouts/end", adminController.EndTimeout)

			commands.POST("/schedule", scheduleController.CreateSchedule)
			commands.DELETE("/past-matches/:id", adminController.DeletePastMatch)
		}
	}

	logger.Info.Printf("Starting courtside on %s (env=%s)", cfg.ListenAddr, cfg.Env)
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}
