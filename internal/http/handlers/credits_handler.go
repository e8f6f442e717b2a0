// README: Credit balance handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreditReader reports a user's remaining monthly credits.
type CreditReader interface {
	Balance(ctx context.Context, userID string) (int, error)
}

type CreditsHandler struct {
	credits CreditReader
}

func NewCreditsHandler(cr CreditReader) *CreditsHandler {
	return &CreditsHandler{credits: cr}
}

// Balance handles GET /api/credits/:userId.
func (h *CreditsHandler) Balance(c *gin.Context) {
	remaining, err := h.credits.Balance(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"credits": remaining})
}
