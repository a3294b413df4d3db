package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"linkrotator/internal/metrics"
	"linkrotator/internal/models"
	"linkrotator/internal/resolver"
	"linkrotator/internal/rotation"
	"linkrotator/internal/target"
)

// RowSource supplies the current mapping rows.
type RowSource interface {
	Rows(ctx context.Context) []models.MappingRow
}

// RedirectHandler turns redirect requests into 302 responses.
type RedirectHandler struct {
	rows     RowSource
	selector *rotation.Selector
	builder  *target.Builder
	keyParam string
	logger   *slog.Logger
}

// NewRedirectHandler creates a new redirect handler. keyParam names the
// redirect key query parameter.
func NewRedirectHandler(rows RowSource, selector *rotation.Selector, builder *target.Builder, keyParam string, logger *slog.Logger) *RedirectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedirectHandler{
		rows:     rows,
		selector: selector,
		builder:  builder,
		keyParam: keyParam,
		logger:   logger,
	}
}

// Redirect serves a redirect request. Without a redirect key the caller's
// domain and slug are used directly; with one, the mapping table decides.
func (h *RedirectHandler) Redirect(c fiber.Ctx) error {
	params, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		metrics.RecordRedirect(metrics.ModeDirect, metrics.OutcomeBadRequest)
		return fiber.NewError(fiber.StatusBadRequest, "Malformed query string")
	}

	key := params.Get(h.keyParam)
	params.Del(h.keyParam)

	if key == "" {
		return h.direct(c, params)
	}
	return h.keyed(c, key, params)
}

func (h *RedirectHandler) direct(c fiber.Ctx, params url.Values) error {
	t, err := resolver.Direct(params)
	if err != nil {
		metrics.RecordRedirect(metrics.ModeDirect, metrics.OutcomeBadRequest)
		return fiber.NewError(fiber.StatusBadRequest, "Missing domain/slug for non-rid redirect")
	}

	params.Del(resolver.ParamDomain)
	params.Del(resolver.ParamSlug)

	metrics.RecordRedirect(metrics.ModeDirect, metrics.OutcomeRedirect)
	return found(c, h.builder.Direct(t.Domain, t.Slug, params))
}

func (h *RedirectHandler) keyed(c fiber.Ctx, key string, passthrough url.Values) error {
	res, err := resolver.Keyed(h.rows.Rows(c.Context()), key)
	switch {
	case errors.Is(err, resolver.ErrUnknownKey):
		metrics.RecordRedirect(metrics.ModeKeyed, metrics.OutcomeNotFound)
		return fiber.NewError(fiber.StatusNotFound, "Unknown or inactive rid")
	case errors.Is(err, resolver.ErrMappingData):
		metrics.RecordRedirect(metrics.ModeKeyed, metrics.OutcomeMappingError)
		h.logger.Error("mapping row unusable",
			"request_id", requestid.FromContext(c),
			"error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Bad mapping (domain/slug)")
	case err != nil:
		metrics.RecordRedirect(metrics.ModeKeyed, metrics.OutcomeError)
		return err
	}

	if res.IsFallback() {
		metrics.RecordRedirect(metrics.ModeKeyed, metrics.OutcomeFallback)
		return found(c, res.FallbackURL)
	}

	sel := h.selector.Select(res.Row)
	if sel.Chosen() {
		metrics.RecordGroupPick(res.Row.RedirectID, sel.Index)
	}

	metrics.RecordRedirect(metrics.ModeKeyed, metrics.OutcomeRedirect)
	return found(c, h.builder.Rotated(res.Row, passthrough, sel))
}

func found(c fiber.Ctx, location string) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Redirect().Status(fiber.StatusFound).To(location)
}
