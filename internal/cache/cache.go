// Package cache holds the TTL-bounded copy of the redirect mapping table.
package cache

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"linkrotator/internal/metrics"
	"linkrotator/internal/models"
	"linkrotator/internal/provider"
	"linkrotator/internal/validation"
)

// DefaultTTL matches the historical ten minute refresh period.
const DefaultTTL = 10 * time.Minute

// Snapshot is one immutable generation of the table.
type Snapshot struct {
	Rows      []models.MappingRow
	FetchedAt time.Time
}

// Age returns how old the snapshot is at now.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// Options configures a Cache.
type Options struct {
	TTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
	// StaticRows are served whenever the provider cannot deliver.
	StaticRows []models.MappingRow
	Logger     *slog.Logger
}

// Cache serves mapping rows, refreshing from the provider once the current
// snapshot is older than the TTL. Concurrent stale readers may each refresh;
// snapshots are swapped whole, so readers never see a partial table.
type Cache struct {
	provider provider.TableProvider
	ttl      time.Duration
	now      func() time.Time
	static   []models.MappingRow
	logger   *slog.Logger

	current atomic.Pointer[Snapshot]
}

// New creates an empty cache over p.
func New(p provider.TableProvider, opts Options) *Cache {
	c := &Cache{
		provider: p,
		ttl:      opts.TTL,
		now:      opts.Now,
		static:   opts.StaticRows,
		logger:   opts.Logger,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Rows returns the cached rows, refreshing synchronously when the cache is
// empty or stale. The returned slice must not be modified.
func (c *Cache) Rows(ctx context.Context) []models.MappingRow {
	now := c.now()
	if snap := c.current.Load(); snap != nil && snap.Age(now) < c.ttl {
		return snap.Rows
	}
	return c.refresh(ctx, now).Rows
}

// Snapshot returns the current generation, or nil before the first fetch.
func (c *Cache) Snapshot() *Snapshot {
	return c.current.Load()
}

// Invalidate forces the next Rows call to refresh.
func (c *Cache) Invalidate() {
	c.current.Store(nil)
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// refresh never fails: provider errors degrade to the static rows, and the
// timestamp still advances so a broken provider is retried once per TTL.
func (c *Cache) refresh(ctx context.Context, now time.Time) *Snapshot {
	table, err := c.provider.FetchTable(ctx)
	outcome := provider.Outcome(err)
	metrics.RecordRefresh(outcome)

	var rows []models.MappingRow
	if err != nil {
		c.logger.Error("mapping table refresh failed, serving static rows",
			"outcome", outcome,
			"static_rows", len(c.static),
			"error", err)
		rows = c.static
	} else {
		rows = models.RowsFromTable(table)
		c.logger.Debug("mapping table refreshed", "rows", len(rows))
		c.reportProblems(rows)
	}

	snap := &Snapshot{Rows: rows, FetchedAt: now}
	c.current.Store(snap)
	metrics.SetCachedRows(len(rows))
	return snap
}

func (c *Cache) reportProblems(rows []models.MappingRow) {
	for i := range rows {
		if problems := validation.CheckRow(&rows[i]); len(problems) > 0 {
			c.logger.Warn("mapping row has problems",
				"index", i,
				"redirect_id", rows[i].RedirectID,
				"problems", problems)
		}
	}
}
