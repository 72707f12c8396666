package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"storeforge/config"
	"storeforge/internal/api"
	"storeforge/internal/content"
	"storeforge/internal/logger"
	"storeforge/internal/middleware"
)

func main() {
	// --- Load .env file ---
	// Environment variables from .env must be in place BEFORE viper reads
	// its config.
	if err := godotenv.Load(); err != nil {
		// A missing .env is normal outside development.
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	appLog := logger.New(cfg.AppEnv, cfg.LogLevel).With().Str("component", "server").Logger()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Dependency Initialization ---
	generator := content.NewDefaultGenerator()
	apiHandler := api.NewAPIHandler(generator, appLog)

	router := gin.New() // Use gin.New() for more control over middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(appLog))
	router.Use(middleware.Metrics())

	api.RegisterRoutes(router, apiHandler)

	// Permissive CORS so the builder page can also call this service
	// directly during development.
	corsRouter := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)(router)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: corsRouter,
		// Set timeouts to prevent slow client attacks
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLog.Info().Str("addr", cfg.ServerAddress).Msg("starting generation server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("server listen error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLog.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error().Err(err).Msg("forced shutdown")
	}
	appLog.Info().Msg("server stopped")
}
