// README: Credit module tests (lazy reset and allowance boundary logic).
package credits

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestSpendCrossMonthReset verifies that a user drained in a previous month is
// automatically reset and the spend succeeds against the fresh allowance.
func TestSpendCrossMonthReset(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	// Seed user with 0 credits from a past month.
	if _, err := db.Exec(ctx, "INSERT INTO trip_credits VALUES ('user_reset', 0, '2000-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.SpendForGeneration(ctx, "user_reset"); err != nil {
		t.Fatalf("SpendForGeneration after cross-month reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT credits_remaining FROM trip_credits WHERE user_id = 'user_reset'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != MonthlyCredits-TripGenerationCost {
		t.Fatalf("expected %d credits remaining, got %d", MonthlyCredits-TripGenerationCost, remaining)
	}
}

// TestSpendInsufficientCheck verifies that a user with less than one
// generation's worth of credits in the current month is blocked.
func TestSpendInsufficientCheck(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO trip_credits (user_id, credits_remaining, last_reset_month) VALUES ('user_low', $1, TO_CHAR(NOW(), 'YYYY-MM'))", TripGenerationCost-1); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := svc.SpendForGeneration(ctx, "user_low")
	if err != ErrInsufficientCredits {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
}

// TestSpendNewUser verifies that a user absent from the table is initialised
// on first call and charged in the same request.
func TestSpendNewUser(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if err := svc.SpendForGeneration(ctx, "user_new"); err != nil {
		t.Fatalf("SpendForGeneration for new user: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT credits_remaining FROM trip_credits WHERE user_id = 'user_new'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != MonthlyCredits-TripGenerationCost {
		t.Fatalf("expected %d credits remaining after first use, got %d", MonthlyCredits-TripGenerationCost, remaining)
	}
}

// TestBalanceUnknownUser verifies that users without a row report the full
// monthly allowance.
func TestBalanceUnknownUser(t *testing.T) {
	svc, _ := setupTestService(t)

	remaining, err := svc.Balance(context.Background(), "user_absent")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if remaining != MonthlyCredits {
		t.Fatalf("expected full allowance %d, got %d", MonthlyCredits, remaining)
	}
}

// setupTestService creates a real postgres-backed Service for integration tests.
// It skips the test when TRIPFORGE_TEST_DSN is not set.
func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TRIPFORGE_TEST_DSN")
	if dsn == "" {
		t.Skip("TRIPFORGE_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE trip_credits"); err != nil {
		t.Fatalf("truncate trip_credits: %v", err)
	}

	return NewService(NewStore(db)), db
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_trip_credits.sql"))
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(content))
	return err
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
