// README: Generation-credit service; lazy monthly reset with first-use init.
package credits

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Service orchestrates credit accounting for itinerary generations.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SpendForGeneration deducts the cost of one itinerary generation from the
// user's monthly allowance. If the user row does not exist yet it is
// initialised and the cost is immediately deducted.
// Returns ErrInsufficientCredits when the allowance for the current month is
// exhausted.
func (s *Service) SpendForGeneration(ctx context.Context, userID string) error {
	err := s.store.Spend(ctx, userID, TripGenerationCost)
	if err != ErrInsufficientCredits {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.Spend(ctx, userID, TripGenerationCost)
}

// Balance reports the user's remaining credits for the current month.
// Unknown users report the full allowance, since their row would be created
// with it on first spend.
func (s *Service) Balance(ctx context.Context, userID string) (int, error) {
	remaining, err := s.store.Balance(ctx, userID)
	if err == pgx.ErrNoRows {
		return MonthlyCredits, nil
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
