// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"linkrotator/internal/db"
)

// TestDB connects to TEST_DATABASE_URL, runs migrations and returns a
// cleanup function that empties the table and closes the pool. The test is
// skipped when TEST_DATABASE_URL is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Start from an empty table
	if _, err := database.Pool.Exec(ctx, "DELETE FROM redirect_rows"); err != nil {
		database.Close()
		t.Fatalf("failed to clean redirect_rows: %v", err)
	}

	cleanup := func() {
		database.Pool.Exec(ctx, "DELETE FROM redirect_rows")
		database.Close()
	}

	return database, cleanup
}
