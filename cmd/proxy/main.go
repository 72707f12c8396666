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
	"github.com/joho/godotenv"

	"storeforge/config"
	"storeforge/internal/logger"
	"storeforge/internal/middleware"
	"storeforge/internal/proxy"
)

func main() {
	// --- Load .env file ---
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	appLog := logger.New(cfg.AppEnv, cfg.LogLevel).With().Str("component", "proxy").Logger()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Dependency Initialization ---
	relayClient := proxy.NewClient(cfg.GenerateTargetURL, cfg.RelayTimeout())
	proxyHandler := proxy.NewHandler(relayClient, appLog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(appLog))
	router.Use(middleware.Metrics())

	proxy.RegisterRoutes(router, proxyHandler)

	server := &http.Server{
		Addr:    cfg.ProxyAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLog.Info().
			Str("addr", cfg.ProxyAddress).
			Str("target", cfg.GenerateTargetURL).
			Msg("starting builder frontend")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("proxy listen error")
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
	appLog.Info().Msg("proxy stopped")
}
