// Package target composes the outbound redirect URL.
package target

import (
	"net/url"
	"regexp"
	"strconv"

	"linkrotator/internal/models"
)

// Query parameter names written or rewritten by the builder.
const (
	ParamS1PCID  = "s1pcid"
	ParamSegment = "segment"
	ParamFBID    = "fbid"
	ParamFBClick = "fbclick"
)

// KeywordParams receive sampled keywords in order.
var KeywordParams = [...]string{"forceKeyA", "forceKeyB", "forceKeyC"}

// Defaults for the static identifier fields.
const (
	DefaultFBID    = "820262166096188"
	DefaultFBClick = "Purchase"
)

var indexSuffix = regexp.MustCompile(`_\d+$`)

// Builder holds the static values stamped onto rotated redirects.
type Builder struct {
	FBID    string
	FBClick string
}

// NewBuilder returns a Builder, substituting defaults for empty values.
func NewBuilder(fbid, fbclick string) *Builder {
	if fbid == "" {
		fbid = DefaultFBID
	}
	if fbclick == "" {
		fbclick = DefaultFBClick
	}
	return &Builder{FBID: fbid, FBClick: fbclick}
}

// Direct builds https://{domain}/{slug}/?{passthrough}.
func (b *Builder) Direct(domain, slug string, passthrough url.Values) string {
	return Compose(domain, slug, passthrough)
}

// Rotated merges passthrough parameters with the row's segment, the static
// identifiers and the sampled keywords; computed fields win on collision.
// When a group was chosen, s1pcid has any _N suffix replaced by the 1-based
// group index.
func (b *Builder) Rotated(row *models.MappingRow, passthrough url.Values, sel models.SelectionResult) string {
	query := cloneValues(passthrough)

	if s1pcid := query.Get(ParamS1PCID); s1pcid != "" && sel.Chosen() {
		query.Set(ParamS1PCID, RewriteS1PCID(s1pcid, sel.Index))
	}

	query.Set(ParamSegment, row.Segment)
	query.Set(ParamFBID, b.FBID)
	query.Set(ParamFBClick, b.FBClick)
	for i, kw := range sel.Keywords {
		if i >= len(KeywordParams) {
			break
		}
		if kw != "" {
			query.Set(KeywordParams[i], kw)
		}
	}

	return Compose(row.Domain, row.Slug, query)
}

// RewriteS1PCID strips a trailing _digits suffix and appends _index.
func RewriteS1PCID(s1pcid string, index int) string {
	return indexSuffix.ReplaceAllString(s1pcid, "") + "_" + strconv.Itoa(index)
}

// Compose normalizes domain and slug and encodes query with keys sorted and
// spaces as '+'.
func Compose(domain, slug string, query url.Values) string {
	return "https://" + models.NormalizeDomain(domain) + "/" + models.NormalizeSlug(slug) + "/?" + query.Encode()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+6)
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
