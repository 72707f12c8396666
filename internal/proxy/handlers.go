package proxy

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storeforge/internal/metrics"
)

// Handler serves the builder page and relays its submissions to the
// generation backend.
type Handler struct {
	client *Client
	log    zerolog.Logger
}

// NewHandler initializes a new builder handler with its dependencies.
func NewHandler(client *Client, log zerolog.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

// GET /
func (h *Handler) Builder(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Storeforge Builder"})
}

// POST /api/generate
func (h *Handler) Generate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRelayBody))
	if err != nil {
		h.fail(c, err)
		return
	}

	status, payload, err := h.client.Forward(c.Request.Context(), body)
	if err != nil {
		h.fail(c, err)
		return
	}

	// The backend speaks JSON; anything else means the relay reached
	// something it should not have.
	if !json.Valid(payload) {
		h.fail(c, errors.New("backend returned a non-JSON payload"))
		return
	}

	c.Data(status, "application/json", payload)
}

// fail collapses every relay failure into the single generic error the
// builder page understands.
func (h *Handler) fail(c *gin.Context, err error) {
	metrics.IncRelayError()
	h.log.Error().Err(err).Msg("relay to generation backend failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "backend proxy failed"})
}
