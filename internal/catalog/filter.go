package catalog

import (
	"strconv"
	"strings"
)

// Query is the filter portion of the view state.
type Query struct {
	Search   string
	Category Category
	Bucket   Bucket
}

// IsZero reports whether no predicate is active.
func (q Query) IsZero() bool {
	return q.Search == "" && q.Category == CategoryAny && q.Bucket == BucketAny
}

// Filter returns the entities matching every active predicate, in input
// order. The input slice is never modified.
func Filter(list []Entity, q Query) []Entity {
	out := make([]Entity, 0, len(list))
	needle := strings.ToLower(q.Search)
	for _, e := range list {
		if !matchesText(e, q.Search, needle) {
			continue
		}
		if q.Category != CategoryAny && !e.HasCategory(q.Category) {
			continue
		}
		if !q.Bucket.Matches(e.Height) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matchesText is the name-or-height substring test. The height side compares
// the raw search text against the decimal height, so "10" finds height 10.
func matchesText(e Entity, raw, lowered string) bool {
	if raw == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), lowered) {
		return true
	}
	return strings.Contains(strconv.Itoa(e.Height), raw)
}
