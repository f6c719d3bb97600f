package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
)

// renderCatalog renders the visible page inside a titled box.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // header + command bar

	if m.snapshot.Loading {
		msg := styles.MutedText.Render(m.spinner.View() + " Fetching catalog")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	page := m.page()
	title := fmt.Sprintf("Catalog (%d)", page.Total)
	inner := m.width - 2

	var content string
	switch {
	case page.Total == 0:
		content = styles.MutedText.Background(lipgloss.Color(m.theme.FocusBg)).
			Render("No matches. Press r to reset filters.")
	case len(page.Items) == 0:
		content = styles.MutedText.Background(lipgloss.Color(m.theme.FocusBg)).
			Render(fmt.Sprintf("Nothing on page %d. Press h to go back.", page.Page))
	default:
		content = m.renderRows(page, inner)
	}
	return m.renderTitledBox(title, content, m.width, contentHeight, true)
}

// renderRows renders the column header and one line per entity.
func (m Model) renderRows(page catalog.PageView, width int) string {
	cols := m.columns(width)
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	lines := []string{bg.FillLine(bg.Render(cols.header(), styles.FaintText), width)}
	for i, e := range page.Items {
		if i == m.cursor {
			row := cols.row(page.Start+i+1, e, NewBgStyle(m.theme.SelectionBg),
				lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText)), styles)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(row))
			continue
		}
		row := cols.row(page.Start+i+1, e, bg, styles.Text, styles)
		lines = append(lines, bg.FillLine(row, width))
	}
	return strings.Join(lines, "\n")
}

// listColumns decides which optional columns fit the terminal width.
type listColumns struct {
	showWeight bool
	showImage  bool
	imageWidth int
}

func (m Model) columns(width int) listColumns {
	c := listColumns{
		showWeight: m.width >= LayoutCompactWidth,
		showImage:  m.width >= LayoutWideWidth,
	}
	if c.showImage {
		used := colIndexWidth + colNameWidth + colTypesWidth + colHeightWidth + colWeightWidth
		c.imageWidth = max(0, width-used-2)
	}
	return c
}

func (c listColumns) header() string {
	var b strings.Builder
	b.WriteString(padRight("#", colIndexWidth))
	b.WriteString(padRight("NAME", colNameWidth))
	b.WriteString(padRight("TYPES", colTypesWidth))
	b.WriteString(padRight("HEIGHT", colHeightWidth))
	if c.showWeight {
		b.WriteString(padRight("WEIGHT", colWeightWidth))
	}
	if c.showImage {
		b.WriteString("IMAGE")
	}
	return b.String()
}

// row formats one entity. n is the 1-based position in the derived list.
func (c listColumns) row(n int, e catalog.Entity, bg BgStyle, text lipgloss.Style, styles Styles) string {
	parts := []string{
		bg.Render(padRight(fmt.Sprintf("%d", n), colIndexWidth), styles.FaintText),
		bg.Render(padRight(truncate(e.DisplayName(), colNameWidth-1), colNameWidth), text.Bold(true)),
		bg.Render(padRight(truncate(e.CategoryLabel(), colTypesWidth-1), colTypesWidth), categoryColor(e, styles)),
		bg.Render(padRight(e.HeightMeters()+" m", colHeightWidth), text),
	}
	if c.showWeight {
		parts = append(parts, bg.Render(padRight(e.WeightKilograms()+" kg", colWeightWidth), text))
	}
	if c.showImage && c.imageWidth > 0 {
		parts = append(parts, bg.Render(truncateMiddle(emptyDash(e.ImageURL), c.imageWidth), styles.FaintText))
	}
	return strings.Join(parts, "")
}

// categoryColor colors the types column after the primary category.
func categoryColor(e catalog.Entity, styles Styles) lipgloss.Style {
	if len(e.Categories) == 0 {
		return styles.MutedText
	}
	color := styles.categoryColors[e.Categories[0]]
	if color == "" {
		return styles.MutedText
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// renderTitledBox draws a single-line border with the title centered in the
// top edge. Content lines are padded to fill the box.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(0, width-2)
	titleLen := lipgloss.Width(title)
	leftPad := max(0, (innerWidth-titleLen-2)/2)
	rightPad := max(0, innerWidth-titleLen-2-leftPad)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	lineStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, max(0, height-2))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+lineStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}
