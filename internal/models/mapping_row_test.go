package models

import (
	"reflect"
	"testing"
)

func TestNewMappingRow(t *testing.T) {
	header := []string{" redirect_id ", "active", "domain", "slug", "segment", "group1", "group2", "group3", "weights", "fallback_url"}

	tests := []struct {
		name     string
		cells    []string
		expected MappingRow
	}{
		{
			name:  "full row",
			cells: []string{"5", "TRUE", "https://example.com", "/bar", "seg", "a|b", "c", "", "1, 2", ""},
			expected: MappingRow{
				RedirectID: "5",
				Active:     true,
				Domain:     "example.com",
				Slug:       "bar",
				Segment:    "seg",
				Groups:     []string{"a|b", "c"},
				Weights:    []string{"1", "2"},
			},
		},
		{
			name:  "short row fills empty cells",
			cells: []string{"7", "false", "example.org"},
			expected: MappingRow{
				RedirectID: "7",
				Active:     false,
				Domain:     "example.org",
			},
		},
		{
			name:  "fallback only",
			cells: []string{"", "", "", "", "", "", "", "", "", " https://fallback.example/ "},
			expected: MappingRow{
				Active:      true,
				FallbackURL: "https://fallback.example/",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMappingRow(header, tt.cells)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NewMappingRow() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNewMappingRow_ArticleAlias(t *testing.T) {
	row := NewMappingRow([]string{"redirect_id", "domain", "article"}, []string{"1", "example.com", "/post-1"})
	if row.Slug != "post-1" {
		t.Errorf("Slug = %q, want %q", row.Slug, "post-1")
	}
}

func TestParseActive(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"TRUE", true},
		{"true", true},
		{"1", true},
		{"Yes", true},
		{"FALSE", false},
		{"no", false},
		{"0", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := ParseActive(tt.value); got != tt.expected {
			t.Errorf("ParseActive(%q) = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := NormalizeDomain("http://example.com"); got != "example.com" {
		t.Errorf("NormalizeDomain = %q", got)
	}
	if got := NormalizeDomain("https://https://example.com"); got != "https://example.com" {
		t.Errorf("NormalizeDomain should strip one scheme, got %q", got)
	}
	if got := NormalizeSlug("//foo"); got != "/foo" {
		t.Errorf("NormalizeSlug should strip one slash, got %q", got)
	}
}

func TestRowsFromTable_PreservesOrder(t *testing.T) {
	table := Table{
		Header: []string{"redirect_id"},
		Rows:   [][]string{{"a"}, {"b"}, {"a"}},
	}
	rows := RowsFromTable(table)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for i, want := range []string{"a", "b", "a"} {
		if rows[i].RedirectID != want {
			t.Errorf("rows[%d].RedirectID = %q, want %q", i, rows[i].RedirectID, want)
		}
	}
}
