package validation

import (
	"testing"

	"linkrotator/internal/models"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://example.com/path/to/page", true, ""},
		{"valid with query", "https://example.com?foo=bar", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,<b>x</b>", false, "URL must use http:// or https:// scheme"},
		{"relative path", "/landing", false, "URL must use http:// or https:// scheme"},
		{"missing host", "https://", false, "URL must have a valid host"},
		{"bad escape", "https://example.com/%zz", false, "Invalid URL format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"sub.example.co.uk", true},
		{"localhost:8080", true},
		{"a", true},
		{"", false},
		{"example.com/path", false},
		{"https://example.com", false},
		{"exa mple.com", false},
		{"-example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			got, _ := ValidateDomain(tt.domain)
			if got != tt.want {
				t.Errorf("ValidateDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"article", true},
		{"news/2024/story", true},
		{"", false},
		{"a?b=c", false},
		{"a#frag", false},
		{"two words", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, _ := ValidateSlug(tt.slug)
			if got != tt.want {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestCheckRow(t *testing.T) {
	tests := []struct {
		name string
		row  models.MappingRow
		want int
	}{
		{
			name: "clean keyed row",
			row: models.MappingRow{
				RedirectID: "r1", Active: true, Domain: "example.com", Slug: "a",
				Groups: []string{"x", "y"}, Weights: []string{"1", "2"},
			},
			want: 0,
		},
		{
			name: "fallback only row",
			row:  models.MappingRow{FallbackURL: "https://example.com/home"},
			want: 0,
		},
		{
			name: "bad fallback",
			row:  models.MappingRow{FallbackURL: "javascript:alert(1)"},
			want: 1,
		},
		{
			name: "inactive row skips mapping checks",
			row:  models.MappingRow{RedirectID: "r2", Active: false},
			want: 0,
		},
		{
			name: "active row missing everything",
			row:  models.MappingRow{RedirectID: "r3", Active: true},
			want: 2,
		},
		{
			name: "extra weights",
			row: models.MappingRow{
				RedirectID: "r4", Active: true, Domain: "example.com", Slug: "a",
				Groups: []string{"x"}, Weights: []string{"1", "2"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRow(&tt.row)
			if len(got) != tt.want {
				t.Errorf("CheckRow() = %v, want %d problems", got, tt.want)
			}
		})
	}
}
