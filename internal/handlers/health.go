package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"linkrotator/internal/cache"
)

// SnapshotSource exposes cache state for health reporting.
type SnapshotSource interface {
	Snapshot() *cache.Snapshot
	TTL() time.Duration
}

// HealthHandler reports process and cache health.
type HealthHandler struct {
	cache SnapshotSource
	now   func() time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(c SnapshotSource) *HealthHandler {
	return &HealthHandler{cache: c, now: time.Now}
}

// Health returns the size and age of the cached mapping table. It never
// triggers a refresh.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	snap := h.cache.Snapshot()
	if snap == nil {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"rows":       0,
			"fetched_at": nil,
			"stale":      true,
		})
	}

	age := snap.Age(h.now())
	return c.JSON(fiber.Map{
		"status":      "ok",
		"rows":        len(snap.Rows),
		"fetched_at":  snap.FetchedAt.UTC().Format(time.RFC3339),
		"age_seconds": int64(age.Seconds()),
		"stale":       age >= h.cache.TTL(),
	})
}
