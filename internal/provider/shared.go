package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"linkrotator/internal/models"
)

// Storage is the key/value subset of fiber.Storage used for shared
// snapshots. github.com/gofiber/storage/redis/v3 satisfies it.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// SharedProvider lets several processes share one upstream fetch per TTL by
// keeping the last table in a key/value store.
type SharedProvider struct {
	upstream TableProvider
	store    Storage
	key      string
	ttl      time.Duration
	logger   *slog.Logger
}

// NewSharedProvider wraps upstream with a snapshot stored under key for ttl.
func NewSharedProvider(upstream TableProvider, store Storage, key string, ttl time.Duration, logger *slog.Logger) *SharedProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &SharedProvider{
		upstream: upstream,
		store:    store,
		key:      key,
		ttl:      ttl,
		logger:   logger,
	}
}

// FetchTable implements TableProvider. Store failures are logged and the
// upstream is used directly.
func (p *SharedProvider) FetchTable(ctx context.Context) (models.Table, error) {
	if table, ok := p.load(); ok {
		return table, nil
	}

	table, err := p.upstream.FetchTable(ctx)
	if err != nil {
		return models.Table{}, err
	}

	data, err := json.Marshal(table)
	if err != nil {
		p.logger.Error("failed to encode table snapshot", "key", p.key, "error", err)
		return table, nil
	}
	if err := p.store.Set(p.key, data, p.ttl); err != nil {
		p.logger.Error("failed to store table snapshot", "key", p.key, "error", err)
	}
	return table, nil
}

func (p *SharedProvider) load() (models.Table, bool) {
	data, err := p.store.Get(p.key)
	if err != nil {
		p.logger.Error("failed to read table snapshot", "key", p.key, "error", err)
		return models.Table{}, false
	}
	if len(data) == 0 {
		return models.Table{}, false
	}

	var table models.Table
	if err := json.Unmarshal(data, &table); err != nil {
		p.logger.Warn("discarding unreadable table snapshot", "key", p.key, "error", err)
		return models.Table{}, false
	}
	return table, true
}
