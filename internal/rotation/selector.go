// Package rotation implements weighted group selection and keyword sampling.
package rotation

import (
	"math"
	"strconv"
	"strings"

	"linkrotator/internal/models"
)

// MaxKeywords is the number of keyword fields available downstream.
const MaxKeywords = 3

// Selector picks groups and keywords from a RandomSource.
type Selector struct {
	src         RandomSource
	maxKeywords int
}

// NewSelector returns a Selector sampling up to maxKeywords keywords.
// maxKeywords is clamped to [1, MaxKeywords]; a nil src uses DefaultSource.
func NewSelector(src RandomSource, maxKeywords int) *Selector {
	if src == nil {
		src = DefaultSource
	}
	if maxKeywords <= 0 || maxKeywords > MaxKeywords {
		maxKeywords = MaxKeywords
	}
	return &Selector{src: src, maxKeywords: maxKeywords}
}

// Select picks a group for row and samples its keywords. A row without
// groups yields a zero SelectionResult.
func (s *Selector) Select(row *models.MappingRow) models.SelectionResult {
	if len(row.Groups) == 0 {
		return models.SelectionResult{}
	}
	i := s.PickWeightedGroup(row.Groups, row.Weights)
	group := row.Groups[i]
	return models.SelectionResult{
		Group:    group,
		Index:    i + 1,
		Keywords: s.PickKeywords(group, s.maxKeywords),
	}
}

// PickWeightedGroup returns the 0-based index of the chosen group. groups
// must not be empty.
//
// Weights parse as non-negative floats; invalid or negative values count as
// zero and a zero total is treated as one. A draw r in [0, total) selects
// the first group whose cumulative weight reaches r. Groups beyond the end
// of weights weigh zero. When no group reaches r, including weight mass
// listed past the last group, the first group is returned.
func (s *Selector) PickWeightedGroup(groups, weights []string) int {
	parsed := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		parsed[i] = ParseWeight(w)
		total += parsed[i]
	}
	if total == 0 {
		total = 1
	}

	r := s.src.Float64() * total
	acc := 0.0
	for i := range groups {
		if i < len(parsed) {
			acc += parsed[i]
		}
		if acc >= r {
			return i
		}
	}
	return 0
}

// PickKeywords splits a pipe delimited group value and returns up to max
// distinct keywords in random order.
func (s *Selector) PickKeywords(group string, max int) []string {
	keywords := SplitKeywords(group)
	if len(keywords) == 0 || max <= 0 {
		return nil
	}
	n := min(max, len(keywords))
	picked := make([]string, 0, n)
	for _, idx := range s.src.Perm(len(keywords))[:n] {
		picked = append(picked, keywords[idx])
	}
	return picked
}

// ParseWeight parses a weight cell; anything unparsable, negative or
// non-finite is zero.
func ParseWeight(w string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SplitKeywords splits on '|', trims and drops empty and repeated entries.
func SplitKeywords(group string) []string {
	var keywords []string
	seen := make(map[string]struct{})
	for _, k := range strings.Split(group, "|") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}
	return keywords
}
