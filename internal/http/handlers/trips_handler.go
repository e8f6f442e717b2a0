// README: Saved-trip handlers for save/list/get/delete and PDF export.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripforge/internal/export"
	"tripforge/internal/itinerary"
	"tripforge/internal/modules/trips"
)

// TripSaver is the saved-trip service surface the handler consumes.
type TripSaver interface {
	Save(ctx context.Context, destination string, it itinerary.Itinerary, formData json.RawMessage) (string, error)
	List(ctx context.Context) ([]trips.SavedTrip, error)
	GetByID(ctx context.Context, id string) (trips.SavedTrip, error)
	Delete(ctx context.Context, id string) error
}

type TripsHandler struct {
	trips TripSaver
}

func NewTripsHandler(svc TripSaver) *TripsHandler {
	return &TripsHandler{trips: svc}
}

type saveTripReq struct {
	Destination string              `json:"destination"`
	Itinerary   itinerary.Itinerary `json:"itinerary"`
	FormData    json.RawMessage     `json:"formData,omitempty"`
}

// Save handles POST /api/trips.
func (h *TripsHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	id, err := h.trips.Save(c.Request.Context(), req.Destination, req.Itinerary, req.FormData)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"id": id})
}

// List handles GET /api/trips.
func (h *TripsHandler) List(c *gin.Context) {
	all, err := h.trips.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, all)
}

// Get handles GET /api/trips/:id.
func (h *TripsHandler) Get(c *gin.Context) {
	trip, err := h.trips.GetByID(c.Request.Context(), c.Param("id"))
	if err == trips.ErrNotFound {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, trip)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripsHandler) Delete(c *gin.Context) {
	if err := h.trips.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/trips/:id/export.
func (h *TripsHandler) Export(c *gin.Context) {
	trip, err := h.trips.GetByID(c.Request.Context(), c.Param("id"))
	if err == trips.ErrNotFound {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	pdf, err := export.PDF(trip.Itinerary)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to render pdf")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip-`+trip.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
