// Package resolver picks the redirect target for a request: caller supplied
// domain and slug, a keyed mapping row, or a fallback row.
package resolver

import (
	"fmt"
	"net/url"

	"linkrotator/internal/models"
)

// Reserved query parameters for direct redirects.
const (
	ParamDomain = "domain"
	ParamSlug   = "slug"
)

// Target is a normalized domain and slug pair.
type Target struct {
	Domain string
	Slug   string
}

// Resolution is the outcome of a keyed lookup. Exactly one of Row and
// FallbackURL is set.
type Resolution struct {
	Row         *models.MappingRow
	FallbackURL string
}

// IsFallback reports whether the lookup fell through to a fallback row.
func (r Resolution) IsFallback() bool {
	return r.Row == nil && r.FallbackURL != ""
}

// Direct reads domain and slug from the request parameters.
func Direct(params url.Values) (Target, error) {
	t := Target{
		Domain: models.NormalizeDomain(params.Get(ParamDomain)),
		Slug:   models.NormalizeSlug(params.Get(ParamSlug)),
	}
	if t.Domain == "" || t.Slug == "" {
		return Target{}, ErrClientInput
	}
	return t, nil
}

// Keyed finds the first active row whose redirect id equals key. Without a
// match the first row carrying a fallback URL is used, active or not.
// Duplicate ids are not an error; the earliest row wins.
func Keyed(rows []models.MappingRow, key string) (Resolution, error) {
	for i := range rows {
		row := &rows[i]
		if row.RedirectID != key || !row.Active {
			continue
		}
		if row.Domain == "" || row.Slug == "" {
			return Resolution{}, fmt.Errorf("%w: redirect_id %q", ErrMappingData, key)
		}
		return Resolution{Row: row}, nil
	}

	for i := range rows {
		if rows[i].HasFallback() {
			return Resolution{FallbackURL: rows[i].FallbackURL}, nil
		}
	}

	return Resolution{}, ErrUnknownKey
}
