package jobs

import (
	"context"
	"log/slog"
	"time"

	"linkrotator/internal/models"
)

// RowReader is the cache surface the warmer drives.
type RowReader interface {
	Rows(ctx context.Context) []models.MappingRow
	TTL() time.Duration
}

// CacheWarmer reads the cache on a fixed interval so that stale refreshes
// happen off the request path. Reads go through the normal TTL check; the
// warmer never forces a fetch of a fresh cache.
type CacheWarmer struct {
	cache    RowReader
	interval time.Duration
	logger   *slog.Logger
}

// NewCacheWarmer creates a new cache warmer.
func NewCacheWarmer(cache RowReader, interval time.Duration, logger *slog.Logger) *CacheWarmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheWarmer{
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the warm loop and blocks until ctx is done.
func (w *CacheWarmer) Start(ctx context.Context) {
	w.logger.Info("cache warmer started", "interval", w.interval, "ttl", w.cache.TTL())

	// Run immediately on start
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache warmer stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) {
	rows := w.cache.Rows(ctx)
	w.logger.Debug("cache warmed", "rows", len(rows))
}
