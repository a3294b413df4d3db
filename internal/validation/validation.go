// Package validation checks mapping rows for data that would produce a
// broken redirect. Problems are reported, never enforced: the redirect path
// still serves whatever the table says.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"linkrotator/internal/models"
)

// hostPattern accepts a bare hostname with an optional port.
var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?(:[0-9]+)?$`)

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This rejects javascript:, data:, vbscript: and other non-web schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateDomain checks a normalized domain cell. The value must be a bare
// host, optionally with a port.
func ValidateDomain(domain string) (bool, string) {
	if domain == "" {
		return false, "domain is required"
	}
	if !hostPattern.MatchString(domain) {
		return false, "domain must be a bare host name"
	}
	return true, ""
}

// ValidateSlug rejects slugs that would change the composed URL's shape.
func ValidateSlug(slug string) (bool, string) {
	if slug == "" {
		return false, "slug is required"
	}
	if strings.ContainsAny(slug, "?# ") {
		return false, "slug must not contain '?', '#' or spaces"
	}
	return true, ""
}

// CheckRow returns the problems found in row. Inactive rows are only checked
// for their fallback URL since that is the one field used regardless of the
// active flag.
func CheckRow(row *models.MappingRow) []string {
	var problems []string

	if row.HasFallback() {
		if ok, msg := ValidateURL(row.FallbackURL); !ok {
			problems = append(problems, "fallback_url: "+msg)
		}
	}

	if row.RedirectID == "" || !row.Active {
		return problems
	}

	if ok, msg := ValidateDomain(row.Domain); !ok {
		problems = append(problems, msg)
	}
	if ok, msg := ValidateSlug(row.Slug); !ok {
		problems = append(problems, msg)
	}
	if len(row.Weights) > len(row.Groups) {
		problems = append(problems, "more weights than groups")
	}
	return problems
}
