package catalog

// ViewState is the user-controlled input to the pipeline plus the detail
// selection. It is a value: every method returns an updated copy.
type ViewState struct {
	Search   string
	Category Category
	Bucket   Bucket
	Sort     SortOrder
	Page     int

	// Selected stays populated after Close; only DetailOpen gates rendering.
	Selected   *Entity
	DetailOpen bool
}

// DefaultViewState is the state shown at startup and after Reset.
func DefaultViewState() ViewState {
	return ViewState{Sort: SortAsc, Page: 1}
}

// Query extracts the filter inputs.
func (v ViewState) Query() Query {
	return Query{Search: v.Search, Category: v.Category, Bucket: v.Bucket}
}

// WithSearch replaces the search text. The page is left alone.
func (v ViewState) WithSearch(s string) ViewState {
	v.Search = s
	return v
}

// WithCategory replaces the category filter.
func (v ViewState) WithCategory(c Category) ViewState {
	v.Category = c
	return v
}

// WithBucket replaces the size bucket filter.
func (v ViewState) WithBucket(b Bucket) ViewState {
	v.Bucket = b
	return v
}

// WithSort replaces the sort direction.
func (v ViewState) WithSort(o SortOrder) ViewState {
	if o != SortDesc {
		o = SortAsc
	}
	v.Sort = o
	return v
}

// NextPage advances unless the current page already reaches the end of a
// derived list of length total.
func (v ViewState) NextPage(total int) ViewState {
	if v.Page >= PageCount(total, PageSize) {
		return v
	}
	v.Page++
	return v
}

// PrevPage steps back unless already on page 1.
func (v ViewState) PrevPage() ViewState {
	if v.Page <= 1 {
		return v
	}
	v.Page--
	return v
}

// Reset restores filters, sort and page to defaults. The detail selection is
// owned by Open/Close and survives a reset.
func (v ViewState) Reset() ViewState {
	d := DefaultViewState()
	d.Selected = v.Selected
	d.DetailOpen = v.DetailOpen
	return d
}

// Open selects e for inspection and shows the detail view.
func (v ViewState) Open(e Entity) ViewState {
	sel := e.Clone()
	v.Selected = &sel
	v.DetailOpen = true
	return v
}

// Close hides the detail view.
func (v ViewState) Close() ViewState {
	v.DetailOpen = false
	return v
}

// Inspected returns the entity to render, if the detail view is open.
func (v ViewState) Inspected() (Entity, bool) {
	if !v.DetailOpen || v.Selected == nil {
		return Entity{}, false
	}
	return *v.Selected, true
}
