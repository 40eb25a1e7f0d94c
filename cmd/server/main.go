// Package main is the entry point for the ledger server.
// It loads configuration, opens the database and the optional Redis
// cache, builds the HTTP app and serves until interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger/internal/config"
	"ledger/internal/repositories"
	"ledger/internal/repositories/cache"
	"ledger/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.Open(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("✅ Connected to %s database", cfg.DB.Client)

	redisClient, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		log.Printf("⚠️ Redis unavailable, summary cache disabled: %v", err)
		redisClient = nil
	} else if redisClient != nil {
		log.Println("✅ Redis connected, summary cache enabled")
	}

	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
		if err := repositories.Close(db); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
	}()

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, cfg, routes.Dependencies{DB: db, Redis: redisClient})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Printf("⚠️ Server shutdown error: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
