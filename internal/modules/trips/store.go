// README: Saved-trip store backed by a Redis list; newest first, trimmed to MaxTrips.
package trips

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const recentTripsKey = "trips:recent"

// Store persists saved trips as a Redis list ordered newest first.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Push prepends the trip and trims the list to MaxTrips in one transaction.
func (s *Store) Push(ctx context.Context, trip SavedTrip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("encode trip: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, recentTripsKey, data)
	pipe.LTrim(ctx, recentTripsKey, 0, MaxTrips-1)
	_, err = pipe.Exec(ctx)
	return err
}

// List returns all saved trips, newest first.
func (s *Store) List(ctx context.Context) ([]SavedTrip, error) {
	vals, err := s.rdb.LRange(ctx, recentTripsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]SavedTrip, 0, len(vals))
	for _, v := range vals {
		var trip SavedTrip
		if err := json.Unmarshal([]byte(v), &trip); err != nil {
			return nil, fmt.Errorf("decode trip: %w", err)
		}
		out = append(out, trip)
	}
	return out, nil
}

// Replace rewrites the whole list; used for deletion, which has no direct
// Redis list primitive for JSON payloads.
func (s *Store) Replace(ctx context.Context, all []SavedTrip) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, recentTripsKey)
	for _, trip := range all {
		data, err := json.Marshal(trip)
		if err != nil {
			return fmt.Errorf("encode trip: %w", err)
		}
		pipe.RPush(ctx, recentTripsKey, data)
	}
	_, err := pipe.Exec(ctx)
	return err
}
