// README: Saved-trip model; server-side counterpart of the client trip cache.
package trips

import (
	"encoding/json"
	"errors"
	"time"

	"tripforge/internal/itinerary"
)

// ErrNotFound is returned when no saved trip has the requested id.
var ErrNotFound = errors.New("trip not found")

// MaxTrips caps the store at the most recent saves; the oldest entry is
// silently evicted on overflow.
const MaxTrips = 10

// SavedTrip is one stored generation result plus the form data that produced it.
type SavedTrip struct {
	ID          string              `json:"id"`
	Destination string              `json:"destination"`
	Itinerary   itinerary.Itinerary `json:"itinerary"`
	FormData    json.RawMessage     `json:"formData,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
