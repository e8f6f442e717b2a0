// README: Trip generation handler (credit-guarded multi-agent pipeline).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripforge/internal/itinerary"
	"tripforge/internal/modules/credits"
	"tripforge/internal/pipeline"
)

// TripGenerator is the pipeline surface the handler consumes.
type TripGenerator interface {
	Generate(ctx context.Context, req pipeline.TripRequest) (*itinerary.Itinerary, error)
}

// CreditSpender charges a user for one generation. May be nil when credit
// accounting is disabled.
type CreditSpender interface {
	SpendForGeneration(ctx context.Context, userID string) error
}

type TripHandler struct {
	pipeline TripGenerator
	credits  CreditSpender
}

func NewTripHandler(p TripGenerator, cr CreditSpender) *TripHandler {
	return &TripHandler{pipeline: p, credits: cr}
}

type generateReq struct {
	pipeline.TripRequest
	UserID string `json:"userId,omitempty"`
}

// Generate handles POST /api/trips/generate.
func (h *TripHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	// Anonymous requests skip credit accounting.
	if uid := strings.TrimSpace(req.UserID); uid != "" && h.credits != nil {
		if err := h.credits.SpendForGeneration(c.Request.Context(), uid); err != nil {
			if errors.Is(err, credits.ErrInsufficientCredits) {
				writeError(c, http.StatusTooManyRequests, err.Error())
				return
			}
			writeError(c, http.StatusInternalServerError, "internal error")
			return
		}
	}

	it, err := h.pipeline.Generate(c.Request.Context(), req.TripRequest)
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, it)
}
