package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the generation endpoints.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// Anything other than POST on a known route answers 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// --- Generation ---
	router.POST("/generate", h.Generate) // Generate a storefront bundle from an idea phrase

	// --- Simple Health Check ---
	// Basic health endpoint to check if the service is running
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Instrumentation ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
