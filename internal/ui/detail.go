package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/catalog"
)

const (
	detailMaxWidth = 64
	detailLabelW   = 8
)

// detailModal shows one entity's card. The body lives in a viewport so the
// card scrolls on short terminals.
type detailModal struct {
	entity catalog.Entity
	vp     viewport.Model
}

var _ Modal = detailModal{}

func newDetailModal(e catalog.Entity, theme Theme, width, height int) detailModal {
	d := detailModal{entity: e}
	d.vp = viewport.New(0, 0)
	d.resize(theme, width, height)
	return d
}

// resize fits the viewport to the terminal and re-renders the body.
func (d *detailModal) resize(theme Theme, width, height int) {
	inner := min(detailMaxWidth, width-4) - 4 // border + padding
	inner = max(inner, 10)
	body := renderDetailBody(d.entity, theme, inner)
	d.vp.Width = inner
	d.vp.Height = max(1, min(lipgloss.Height(body), height-6))
	d.vp.SetContent(body)
}

func (d detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Close) {
			return d, nil, true
		}
	case themedResizeMsg:
		d.resize(msg.theme, msg.width, msg.height)
		return d, nil, false
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd, false
}

func (d detailModal) View(theme Theme, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Render(d.vp.View())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// themedResizeMsg is forwarded to an open modal when the window size or
// theme changes.
type themedResizeMsg struct {
	theme         Theme
	width, height int
}

// renderDetailBody renders the card: title-cased name, then one line per
// field. Types render as badges.
func renderDetailBody(e catalog.Entity, theme Theme, width int) string {
	styles := theme.Styles()
	labelStyle := styles.MutedText.Width(detailLabelW)

	lines := []string{
		styles.AccentText.Bold(true).Render(e.DisplayName()),
		styles.FaintText.Render(strings.Repeat("─", width)),
	}
	for _, f := range e.DetailFields() {
		var value string
		switch f.Label {
		case "Types":
			value = categoryBadges(e.Categories, styles)
		case "Image":
			value = styles.InfoText.Render(truncateMiddle(emptyDash(f.Value), width-detailLabelW))
		default:
			value = styles.Text.Render(f.Value)
		}
		lines = append(lines, labelStyle.Render(f.Label+":")+value)
	}
	lines = append(lines, "", styles.FaintText.Render("esc/enter/q to close"))
	return strings.Join(lines, "\n")
}

// categoryBadges renders categories as colored chips in source order.
func categoryBadges(categories []string, styles Styles) string {
	if len(categories) == 0 {
		return styles.MutedText.Render("-")
	}
	chips := make([]string, len(categories))
	for i, c := range categories {
		chips[i] = styles.CategoryStyle(c).Render(c)
	}
	return strings.Join(chips, " ")
}
