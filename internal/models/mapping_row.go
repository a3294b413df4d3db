package models

import (
	"regexp"
	"strings"
)

// Column names recognised in the mapping table header.
const (
	ColRedirectID  = "redirect_id"
	ColActive      = "active"
	ColDomain      = "domain"
	ColSlug        = "slug"
	ColArticle     = "article"
	ColSegment     = "segment"
	ColWeights     = "weights"
	ColFallbackURL = "fallback_url"

	// GroupPrefix marks every column collected into MappingRow.Groups.
	GroupPrefix = "group"
)

var schemePrefix = regexp.MustCompile(`^https?://`)

// MappingRow is one record of the redirect mapping table.
type MappingRow struct {
	RedirectID  string   `json:"redirect_id"`
	Active      bool     `json:"active"`
	Domain      string   `json:"domain"`
	Slug        string   `json:"slug"`
	Segment     string   `json:"segment"`
	Groups      []string `json:"groups"`
	Weights     []string `json:"weights"`
	FallbackURL string   `json:"fallback_url"`
}

// HasFallback reports whether the row can serve as a fallback target.
func (r *MappingRow) HasFallback() bool {
	return r.FallbackURL != ""
}

// NewMappingRow zips header names onto cell values. Headers and cells are
// trimmed; cells beyond the header are ignored, missing cells are empty and
// a repeated header name keeps its last value.
// Group columns are kept in header order with empty values skipped.
func NewMappingRow(header, cells []string) MappingRow {
	fields := make(map[string]string, len(header))
	var groups []string
	for i, h := range header {
		name := strings.TrimSpace(h)
		value := ""
		if i < len(cells) {
			value = strings.TrimSpace(cells[i])
		}
		fields[name] = value
		if strings.HasPrefix(name, GroupPrefix) && value != "" {
			groups = append(groups, value)
		}
	}

	slug := fields[ColSlug]
	if slug == "" {
		slug = fields[ColArticle]
	}

	return MappingRow{
		RedirectID:  fields[ColRedirectID],
		Active:      ParseActive(fields[ColActive]),
		Domain:      NormalizeDomain(fields[ColDomain]),
		Slug:        NormalizeSlug(slug),
		Segment:     fields[ColSegment],
		Groups:      groups,
		Weights:     SplitWeights(fields[ColWeights]),
		FallbackURL: fields[ColFallbackURL],
	}
}

// RowsFromTable converts every data row of t, preserving order.
func RowsFromTable(t Table) []MappingRow {
	rows := make([]MappingRow, 0, len(t.Rows))
	for _, cells := range t.Rows {
		rows = append(rows, NewMappingRow(t.Header, cells))
	}
	return rows
}

// ParseActive reads the active flag. An empty cell means active.
func ParseActive(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// SplitWeights splits a comma separated weights cell, dropping empties.
func SplitWeights(v string) []string {
	var weights []string
	for _, w := range strings.Split(v, ",") {
		if w = strings.TrimSpace(w); w != "" {
			weights = append(weights, w)
		}
	}
	return weights
}

// NormalizeDomain strips a leading http:// or https:// scheme.
func NormalizeDomain(domain string) string {
	return schemePrefix.ReplaceAllString(domain, "")
}

// NormalizeSlug strips a single leading slash.
func NormalizeSlug(slug string) string {
	return strings.TrimPrefix(slug, "/")
}
