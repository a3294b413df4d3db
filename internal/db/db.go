package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkrotator/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, migrateURL(connString))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// migrateURL switches a postgres:// URL to the pgx5:// scheme registered by
// the migrate pgx/v5 driver.
func migrateURL(connString string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(connString, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return connString
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevRows inserts sample mapping rows for development when the table is
// empty.
func (d *DB) SeedDevRows(ctx context.Context) error {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT count(*) FROM redirect_rows`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := []struct {
		redirectID string
		domain     string
		slug       string
		group1     string
		group2     string
		weights    string
		fallback   string
	}{
		{"1", "example.com", "spring-sale", "running shoes|trail shoes|sneakers", "boots|sandals", "3,1", ""},
		{"2", "example.org", "guides/setup", "setup guide|quick start", "", "1", ""},
		{"", "", "", "", "", "", "https://example.com/"},
	}

	query := `
		INSERT INTO redirect_rows (redirect_id, domain, slug, group1, group2, weights, fallback_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, r := range rows {
		if _, err := d.Pool.Exec(ctx, query, r.redirectID, r.domain, r.slug, r.group1, r.group2, r.weights, r.fallback); err != nil {
			return fmt.Errorf("failed to seed row %q: %w", r.redirectID, err)
		}
	}

	return nil
}
