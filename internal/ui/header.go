package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
)

// renderHeader renders the status line: logo, load state and the active
// filters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("dexter", styles.Logo)}

	if m.snapshot.Loading {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.WarningText)+bg.Space()+
				bg.Render("Loading catalog...", styles.WarningText.Bold(true)))
		return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
	}

	compact := m.width < LayoutCompactWidth
	page := m.page()

	parts = append(parts,
		bg.Render("Matches:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", page.Total, len(m.snapshot.Entities)), styles.Text))

	if !compact {
		parts = append(parts,
			bg.Render(m.view.Category.Label(), filterStyle(styles, m.view.Category != catalog.CategoryAny)),
			bg.Render(m.view.Bucket.Label(), filterStyle(styles, m.view.Bucket != catalog.BucketAny)),
			bg.Render(m.view.Sort.Label(), styles.MutedText))
	}

	if m.view.Search != "" && !m.searching {
		parts = append(parts, bg.Render("/"+truncate(m.view.Search, 18), styles.AccentText))
	}

	parts = append(parts, bg.Render(pageLabel(page), styles.InfoText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

func filterStyle(styles Styles, active bool) lipgloss.Style {
	if active {
		return styles.AccentText.Bold(true)
	}
	return styles.MutedText
}

// pageLabel renders "Page N of M". An empty list still has one page.
func pageLabel(p catalog.PageView) string {
	return fmt.Sprintf("Page %d of %d", p.Page, max(1, p.Pages(catalog.PageSize)))
}

// renderCommandBar renders the key hints line. While the search box has
// focus it shows the input instead.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		hint := bg.Render("enter/esc", styles.AccentText) + bg.Sep(":") + bg.Render("Done", styles.MutedText)
		return styles.Header.Width(m.width).Render(m.search.View() + bg.Spaces(2) + hint)
	}

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.snapshot.Loading {
		for _, b := range m.keys.ShortHelp() {
			commands = append(commands, cmd{b.Help().Key, b.Help().Desc})
		}
	} else {
		commands = []cmd{{"/", "Search"}, {"c/C", "Type"}, {"b", "Height"}, {"s", "Sort"}}
		if !m.view.Query().IsZero() || m.view.Sort != catalog.SortAsc {
			commands = append(commands, cmd{"r", "Reset"})
		}
		if key := pageKeys(m.page()); key != "" {
			commands = append(commands, cmd{key, "Page"})
		}
		commands = append(commands, cmd{"enter", "Details"}, cmd{"?", "More"})
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// pageKeys names the paging keys that would move somewhere.
func pageKeys(p catalog.PageView) string {
	switch {
	case p.HasPrev && p.HasNext:
		return "h/l"
	case p.HasPrev:
		return "h"
	case p.HasNext:
		return "l"
	}
	return ""
}
