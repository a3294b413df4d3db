package provider

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"linkrotator/internal/models"
)

// Querier is the subset of pgxpool.Pool used by PostgresProvider.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresProvider reads the mapping table from a database table. Column
// names become the header and rows are ordered by the first column.
type PostgresProvider struct {
	pool  Querier
	table string
}

// NewPostgresProvider creates a provider over the named table.
func NewPostgresProvider(pool Querier, table string) *PostgresProvider {
	return &PostgresProvider{pool: pool, table: table}
}

// FetchTable implements TableProvider.
func (p *PostgresProvider) FetchTable(ctx context.Context) (models.Table, error) {
	if p.pool == nil || p.table == "" {
		return models.Table{}, ErrMissingCredentials
	}

	query := "SELECT * FROM " + pgx.Identifier{p.table}.Sanitize() + " ORDER BY 1"
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: query %s: %w", ErrFetchFailed, p.table, err)
	}
	defer rows.Close()

	var table models.Table
	for _, fd := range rows.FieldDescriptions() {
		table.Header = append(table.Header, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return models.Table{}, fmt.Errorf("%w: scan %s: %w", ErrFetchFailed, p.table, err)
		}
		cells := make([]string, len(values))
		for i, v := range values {
			if v != nil {
				cells[i] = fmt.Sprint(v)
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return models.Table{}, fmt.Errorf("%w: iterate %s: %w", ErrFetchFailed, p.table, err)
	}

	return table, nil
}
