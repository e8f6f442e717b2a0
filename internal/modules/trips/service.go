// README: Saved-trip service; save/list/get/delete with last-10 retention.
package trips

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tripforge/internal/itinerary"
)

// Service exposes the saved-trip operations to the HTTP layer.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Save stores a generation result and returns its new id. On overflow the
// oldest trip is evicted silently.
func (s *Service) Save(ctx context.Context, destination string, it itinerary.Itinerary, formData json.RawMessage) (string, error) {
	trip := SavedTrip{
		ID:          uuid.NewString(),
		Destination: destination,
		Itinerary:   it,
		FormData:    formData,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Push(ctx, trip); err != nil {
		return "", err
	}
	return trip.ID, nil
}

// List returns all saved trips, newest first.
func (s *Service) List(ctx context.Context) ([]SavedTrip, error) {
	return s.store.List(ctx)
}

// GetByID returns the saved trip with the given id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (SavedTrip, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return SavedTrip{}, err
	}
	for _, trip := range all {
		if trip.ID == id {
			return trip, nil
		}
	}
	return SavedTrip{}, ErrNotFound
}

// Delete removes the trip with the given id. Deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, trip := range all {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return s.store.Replace(ctx, kept)
}
