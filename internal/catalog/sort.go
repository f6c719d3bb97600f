package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortLanguage selects the collation rules used for name ordering.
var SortLanguage = language.English

// Sort returns a copy of list ordered by name. The sort is stable in both
// directions.
func Sort(list []Entity, order SortOrder) []Entity {
	out := slices.Clone(list)
	if len(out) < 2 {
		return out
	}
	// Collators keep scratch buffers and are not safe for concurrent use.
	col := collate.New(SortLanguage)
	cmp := func(a, b Entity) int {
		return col.CompareString(a.Name, b.Name)
	}
	if order == SortDesc {
		cmp = func(a, b Entity) int {
			return col.CompareString(b.Name, a.Name)
		}
	}
	slices.SortStableFunc(out, cmp)
	return out
}
