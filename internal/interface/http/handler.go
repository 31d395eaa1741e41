package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/dynamic-pricing/internal/domain/pricing"
	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
	"github.com/yanqian/dynamic-pricing/pkg/util"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	pricingSvc pricing.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(pricingSvc pricing.Service, logger *slog.Logger) *Handler {
	return &Handler{
		pricingSvc: pricingSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// RecommendPrice computes a price recommendation from a loosely typed JSON
// object and always answers with the response envelope.
func (h *Handler) RecommendPrice(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.rejectBody(c, err)
		return
	}
	// A literal null decodes without error into a nil map.
	if payload == nil {
		h.rejectBody(c, nil)
		return
	}

	env := h.pricingSvc.Respond(c.Request.Context(), payload)
	c.JSON(envelopeStatus(env), env)
}

func (h *Handler) rejectBody(c *gin.Context, err error) {
	bindErr := apperrors.Wrap(apperrors.CodeInvalidInput, "request body must be a JSON object", err)
	h.logger.Debug("pricing request body rejected", "error", errMessage(err))
	c.JSON(http.StatusBadRequest, pricing.FailureEnvelope(bindErr, util.NowUTC()))
}

// EngineConfig exposes the read-only engine constants.
func (h *Handler) EngineConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.pricingSvc.Config())
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func envelopeStatus(env pricing.Envelope) int {
	if env.Success {
		return http.StatusOK
	}
	return statusForCode(env.Code())
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
