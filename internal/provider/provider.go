// Package provider fetches the raw redirect mapping table from the
// configured backing store.
package provider

import (
	"context"
	"errors"

	"linkrotator/internal/models"
)

var (
	// ErrMissingCredentials means the provider is not configured well enough
	// to attempt a fetch.
	ErrMissingCredentials = errors.New("missing provider credentials")

	// ErrFetchFailed wraps any failure of an attempted fetch.
	ErrFetchFailed = errors.New("table fetch failed")
)

// TableProvider returns the current mapping table as a header row plus data
// rows. Implementations must be safe for concurrent use.
type TableProvider interface {
	FetchTable(ctx context.Context) (models.Table, error)
}

// ProviderFunc adapts a function to TableProvider.
type ProviderFunc func(ctx context.Context) (models.Table, error)

// FetchTable calls f.
func (f ProviderFunc) FetchTable(ctx context.Context) (models.Table, error) {
	return f(ctx)
}

// Outcome classifies a fetch error for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingCredentials):
		return "missing_credentials"
	default:
		return "fetch_failed"
	}
}
