package proxy

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storeforge/internal/web"
)

// RegisterRoutes sets up the builder page, its assets and the relay
// endpoint.
func RegisterRoutes(router *gin.Engine, h *Handler) {

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// --- Builder Page ---
	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", web.Static())
	router.GET("/", h.Builder)

	// --- Relay ---
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate", h.Generate) // Forward a generation request to the backend
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Instrumentation ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
