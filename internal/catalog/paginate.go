package catalog

// PageSize is the number of entities shown per page.
const PageSize = 10

// PageView is one visible slice of the derived list.
type PageView struct {
	Items   []Entity
	Page    int // 1-based, as requested
	Start   int // index of Items[0] in the derived list
	Total   int // length of the derived list
	HasPrev bool
	HasNext bool
}

// Pages is the number of non-empty pages.
func (p PageView) Pages(size int) int {
	return PageCount(p.Total, size)
}

// Paginate returns the slice [(page-1)*size, page*size) clipped to the list.
// Pages past the end are empty rather than clamped.
func Paginate(list []Entity, page, size int) PageView {
	if size <= 0 {
		size = PageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(list)
	pages := PageCount(total, size)
	view := PageView{
		Page:    page,
		Total:   total,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page > pages {
		view.Items = []Entity{}
		return view
	}
	start := (page - 1) * size
	end := min(start+size, total)
	view.Start = start
	view.Items = make([]Entity, end-start)
	copy(view.Items, list[start:end])
	return view
}

// PageCount is ceil(total/size).
func PageCount(total, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Derive runs the full pipeline for a view state: filter, sort, paginate.
func Derive(list []Entity, vs ViewState, size int) PageView {
	return Paginate(Sort(Filter(list, vs.Query()), vs.Sort), vs.Page, size)
}

// DeriveList runs filter and sort without slicing a page.
func DeriveList(list []Entity, vs ViewState) []Entity {
	return Sort(Filter(list, vs.Query()), vs.Sort)
}
