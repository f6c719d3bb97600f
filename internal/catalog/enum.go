package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Category is a closed set of entity type tags. The zero value matches any.
type Category string

const CategoryAny Category = ""

// Categories lists every known category in the order the selector cycles.
var Categories = []Category{
	"normal", "fire", "water", "grass", "electric", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// Bucket groups entities by raw height.
type Bucket string

const (
	BucketAny    Bucket = ""
	BucketShort  Bucket = "short"
	BucketMedium Bucket = "medium"
	BucketTall   Bucket = "tall"
)

// Buckets lists the selectable buckets in cycle order, starting with any.
var Buckets = []Bucket{BucketAny, BucketShort, BucketMedium, BucketTall}

// SortOrder is the name ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownBucket    = errors.New("unknown size bucket")
	ErrUnknownSortOrder = errors.New("unknown sort order")
)

// ParseCategory validates free text against the known categories.
// Blank input selects CategoryAny.
func ParseCategory(value string) (Category, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "all" || v == "any" {
		return CategoryAny, nil
	}
	for _, c := range Categories {
		if string(c) == v {
			return c, nil
		}
	}
	if hints := SuggestCategories(v, 3); len(hints) > 0 {
		return CategoryAny, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownCategory, value, joinCategories(hints))
	}
	return CategoryAny, fmt.Errorf("%w %q", ErrUnknownCategory, value)
}

// SuggestCategories returns up to limit categories that fuzzily match query,
// closest first.
func SuggestCategories(query string, limit int) []Category {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}
	labels := make([]string, len(Categories))
	for i, c := range Categories {
		labels[i] = string(c)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		// Typos rarely match as subsequences; try the other direction so
		// "fairyy" still suggests "fairy".
		for i, label := range labels {
			if fuzzy.MatchNormalizedFold(label, query) {
				ranks = append(ranks, fuzzy.Rank{Source: label, Target: query, Distance: len(query) - len(label), OriginalIndex: i})
			}
		}
	}
	sort.Sort(ranks)
	out := make([]Category, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, Categories[r.OriginalIndex])
	}
	return out
}

func joinCategories(cs []Category) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// NextCategory cycles forward through any -> Categories... -> any.
func NextCategory(c Category) Category {
	return cycleCategory(c, 1)
}

// PrevCategory cycles backward.
func PrevCategory(c Category) Category {
	return cycleCategory(c, -1)
}

func cycleCategory(c Category, step int) Category {
	// Slot 0 is "any", slots 1..n are Categories.
	n := len(Categories) + 1
	idx := 0
	for i, known := range Categories {
		if known == c {
			idx = i + 1
			break
		}
	}
	idx = ((idx+step)%n + n) % n
	if idx == 0 {
		return CategoryAny
	}
	return Categories[idx-1]
}

// Label is the display form of the category.
func (c Category) Label() string {
	if c == CategoryAny {
		return "All Types"
	}
	return string(c)
}

// ParseBucket validates a size bucket name. Blank input selects BucketAny.
func ParseBucket(value string) (Bucket, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "all", "any":
		return BucketAny, nil
	case string(BucketShort):
		return BucketShort, nil
	case string(BucketMedium):
		return BucketMedium, nil
	case string(BucketTall):
		return BucketTall, nil
	}
	return BucketAny, fmt.Errorf("%w %q (want short, medium or tall)", ErrUnknownBucket, value)
}

// Matches reports whether a raw decimetre height falls into the bucket.
func (b Bucket) Matches(height int) bool {
	switch b {
	case BucketShort:
		return height < 10
	case BucketMedium:
		return height >= 10 && height <= 20
	case BucketTall:
		return height > 20
	default:
		return true
	}
}

// Next cycles any -> short -> medium -> tall -> any.
func (b Bucket) Next() Bucket {
	for i, known := range Buckets {
		if known == b {
			return Buckets[(i+1)%len(Buckets)]
		}
	}
	return BucketAny
}

// Label is the display form of the bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketShort:
		return "Short (0 - 1 m)"
	case BucketMedium:
		return "Medium (1 - 2 m)"
	case BucketTall:
		return "Tall (2+ m)"
	default:
		return "All Heights"
	}
}

// ParseSortOrder validates a sort direction. Blank input selects SortAsc.
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return SortAsc, fmt.Errorf("%w %q (want asc or desc)", ErrUnknownSortOrder, value)
}

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Label is the display form of the order.
func (o SortOrder) Label() string {
	if o == SortDesc {
		return "Sort Z-A"
	}
	return "Sort A-Z"
}
