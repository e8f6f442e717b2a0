// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/pipeline"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeGenerateError maps pipeline failures to the response contract: missing
// destination and empty search results get dedicated bodies, everything else
// surfaces as a generation failure with the underlying message in details.
func writeGenerateError(c *gin.Context, err error) {
	var stageErr *pipeline.StageError
	switch {
	case errors.Is(err, pipeline.ErrMissingDestination):
		writeError(c, http.StatusBadRequest, "Destination is required")
	case errors.Is(err, pipeline.ErrNoPlaces):
		writeError(c, http.StatusNotFound, "No places found for this destination. Please try a different location.")
	case errors.As(err, &stageErr):
		writeJSON(c, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate trip itinerary",
			Details: stageErr.Error(),
		})
	default:
		writeJSON(c, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate trip itinerary",
			Details: err.Error(),
		})
	}
}
