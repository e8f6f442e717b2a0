// README: Generation-credit persistence (postgres).
package credits

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles trip_credits persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Spend atomically checks the monthly allowance and deducts amount credits.
// It resets the balance to MonthlyCredits when last_reset_month is behind the
// current month. Returns ErrInsufficientCredits when 0 rows are updated
// (allowance exhausted or user absent).
func (s *Store) Spend(ctx context.Context, userID string, amount int) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE trip_credits SET
			credits_remaining = CASE WHEN last_reset_month != $1 THEN $2 - $3 ELSE credits_remaining - $3 END,
			last_reset_month = $1
		WHERE user_id = $4 AND (last_reset_month < $1 OR credits_remaining >= $3)
	`, month, MonthlyCredits, amount, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// EnsureUser inserts a new trip_credits row for userID with the default
// monthly allowance. Existing rows are left untouched.
func (s *Store) EnsureUser(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trip_credits (user_id, credits_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, MonthlyCredits, time.Now().Format("2006-01"))
	return err
}

// Balance returns the user's remaining credits, applying the lazy monthly
// reset so the caller always sees the current month's figure.
func (s *Store) Balance(ctx context.Context, userID string) (int, error) {
	month := time.Now().Format("2006-01")

	var remaining int
	err := s.db.QueryRow(ctx, `
		SELECT CASE WHEN last_reset_month != $1 THEN $2 ELSE credits_remaining END
		FROM trip_credits WHERE user_id = $3
	`, month, MonthlyCredits, userID).Scan(&remaining)
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
