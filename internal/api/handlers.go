package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storeforge/internal/content"
	"storeforge/internal/metrics"
	"storeforge/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *content.Generator
	log       zerolog.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen *content.Generator, log zerolog.Logger) *APIHandler {
	return &APIHandler{
		generator: gen,
		log:       log,
	}
}

// --- API Handlers ---

// POST /generate
func (h *APIHandler) Generate(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body is a valid "no idea given" request. Anything else
		// that fails to parse is a client error.
		if !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}

	phrase := content.DefaultIdea
	if req.Idea != nil {
		phrase = *req.Idea
	}

	bundle := h.generator.Generate(phrase)
	metrics.IncGeneration()

	h.log.Info().Str("phrase", phrase).Str("brand", bundle.Brand.Name).Msg("bundle generated")
	c.JSON(http.StatusOK, bundle)
}
