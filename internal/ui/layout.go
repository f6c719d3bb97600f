package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the weight column and
	// filter labels are dropped.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the minimum width to show the image column.
	LayoutWideWidth = 140
)

// Catalog list column widths.
const (
	colIndexWidth  = 5
	colNameWidth   = 16
	colTypesWidth  = 20
	colHeightWidth = 9
	colWeightWidth = 10
)

// SearchCharLimit caps the search input.
const SearchCharLimit = 40

// DefaultPollInterval is how often the UI checks the store while the
// catalog is loading.
const DefaultPollInterval = 200 * time.Millisecond
