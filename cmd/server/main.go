package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/IsakPar/stagemap/internal/cache"      // Compiled-snapshot cache
	"github.com/IsakPar/stagemap/internal/compiler"   // Layout compile pipeline
	"github.com/IsakPar/stagemap/internal/config"     // Internal config loader
	"github.com/IsakPar/stagemap/internal/database"   // MySQL connection helper
	"github.com/IsakPar/stagemap/internal/handler"    // HTTP handlers
	"github.com/IsakPar/stagemap/internal/middleware" // Response cache + rate limiter
	"github.com/IsakPar/stagemap/internal/queue"      // Broker consumer for publish events
	"github.com/IsakPar/stagemap/internal/repository" // Snapshot persistence
	"github.com/IsakPar/stagemap/internal/router"     // Internal router setup
	"github.com/IsakPar/stagemap/internal/selection"  // Per-session selection coordinators
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	// MySQL is optional: without it the service still compiles, caches and
	// serves layouts, it just loses version history across restarts.
	var repo *repository.LayoutRepo
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Printf("mysql unavailable, running without persistence: %v", err)
	} else {
		repo = repository.NewLayoutRepo(db)
	}

	rdb := config.NewRedisClient() // May be nil; cache then stays in-memory only

	layoutCache := cache.New(rdb) // Snapshot cache (memory tier + optional Redis tier)

	// The repository doubles as the version allocator when present;
	// otherwise versions are tracked in memory.
	var comp *compiler.Compiler
	if repo != nil {
		comp = compiler.New(repo)
	} else {
		comp = compiler.New(nil)
	}

	sessions := selection.NewRegistry(layoutCache, selection.Config{
		MaxSelectable: cfg.MaxSelectable,
		MinInterval:   cfg.ToggleDebounce,
	})

	authoring := handler.NewAuthoringHandler(comp, repo, layoutCache)
	public := handler.NewPublicHandler(layoutCache, repo)
	sessionH := handler.NewSessionHandler(layoutCache, sessions, cfg.SessionSecret, cfg.SessionTTLMin, cfg.MaxSelectable)

	e := echo.New() // Create Echo instance

	cacheMW := middleware.NewResponseCache(config.LoadCacheConfig(), rdb) // Redis response cache for layout reads
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb) // Token-bucket limiter for toggles

	router.RegisterRoutes(e)                                   // Health check
	router.RegisterAuthoring(e, authoring)                     // Publish + version history
	router.RegisterPublic(e, public, cacheMW)                  // Layout, frame, translate
	router.RegisterSessions(e, sessionH, cfg.SessionSecret, rateMW) // Sessions + selection

	// Consume publish events in the background; the consumer reconnects on
	// its own and its failure never blocks HTTP traffic.
	go func() {
		if err := queue.StartLayoutConsumer(); err != nil {
			log.Printf("layout consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
