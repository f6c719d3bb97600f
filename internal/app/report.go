package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/five82/dexter/internal/catalog"
)

// ErrNotFound is returned by Show when no entity has the requested name.
var ErrNotFound = errors.New("not found")

// ListOptions are the raw list flags. Enumerations are validated by
// ViewState.
type ListOptions struct {
	Search   string
	Category string
	Bucket   string
	Sort     string
	Page     int // 1-based; 0 selects the first page
}

// ViewState validates the options and converts them to a view state. All
// invalid values are reported together.
func (o ListOptions) ViewState() (catalog.ViewState, error) {
	vs := catalog.DefaultViewState()

	category, catErr := catalog.ParseCategory(o.Category)
	bucket, bucketErr := catalog.ParseBucket(o.Bucket)
	order, sortErr := catalog.ParseSortOrder(o.Sort)
	var pageErr error
	if o.Page < 0 {
		pageErr = fmt.Errorf("page must be >= 1 (0 means 1), got %d", o.Page)
	}
	if err := errors.Join(catErr, bucketErr, sortErr, pageErr); err != nil {
		return vs, err
	}

	vs = vs.WithSearch(o.Search).WithCategory(category).WithBucket(bucket).WithSort(order)
	if o.Page > 0 {
		vs.Page = o.Page
	}
	return vs, nil
}

// List loads the catalog and writes one page as a table.
func (e *Env) List(ctx context.Context, w io.Writer, opts ListOptions) error {
	vs, err := opts.ViewState()
	if err != nil {
		return err
	}
	list, err := LoadCatalog(ctx, e.Source, e.fetchOptions())
	if err != nil {
		return err
	}
	return writePage(w, catalog.Derive(list, vs, catalog.PageSize))
}

// Show loads the catalog and writes the detail card for name.
func (e *Env) Show(ctx context.Context, w io.Writer, name string) error {
	list, err := LoadCatalog(ctx, e.Source, e.fetchOptions())
	if err != nil {
		return err
	}
	entity, ok := catalog.FindByName(list, name)
	if !ok {
		return notFound(list, name)
	}
	return writeCard(w, entity)
}

func notFound(list []catalog.Entity, name string) error {
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(name), names)
	if len(ranks) == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	sort.Sort(ranks)
	suggestions := make([]string, 0, 3)
	for _, r := range ranks[:min(3, len(ranks))] {
		suggestions = append(suggestions, r.Target)
	}
	return fmt.Errorf("%q: %w (did you mean %s?)", name, ErrNotFound, strings.Join(suggestions, ", "))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writePage renders a page as a table followed by the page footer.
func writePage(w io.Writer, page catalog.PageView) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "TYPES", "HEIGHT", "WEIGHT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, e := range page.Items {
		t.Row(
			strconv.Itoa(page.Start+i+1),
			e.DisplayName(),
			e.CategoryLabel(),
			e.HeightMeters()+" m",
			e.WeightKilograms()+" kg",
		)
	}

	pages := max(1, page.Pages(catalog.PageSize))
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d, %d matches\n", page.Page, pages, page.Total)
	return err
}

// writeCard renders the detail card as plain labelled lines.
func writeCard(w io.Writer, e catalog.Entity) error {
	var b strings.Builder
	b.WriteString(e.DisplayName())
	b.WriteString("\n")
	for _, f := range e.DetailFields() {
		fmt.Fprintf(&b, "%-8s %s\n", f.Label+":", f.Value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
