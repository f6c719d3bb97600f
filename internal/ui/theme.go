package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the resolved set of colors the views draw with.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Info    string

	// Badge colors keyed by category name.
	CategoryColors map[string]string
}

// palette is a theme's source colors: four background layers, the
// selection, text shades and seven hues.
type palette struct {
	bg0, bg1, bg2, bg3 string
	sel, selFg, border string
	fg, comment, faint string

	red, orange, yellow, green, cyan, blue, magenta string
}

func (p palette) theme(name string) Theme {
	return Theme{
		Name:          name,
		Background:    p.bg0,
		Surface:       p.bg1,
		SurfaceAlt:    p.bg2,
		FocusBg:       p.bg3,
		SelectionBg:   p.sel,
		SelectionText: p.selFg,
		Border:        p.border,
		BorderFocus:   p.blue,
		Text:          p.fg,
		Muted:         p.comment,
		Faint:         p.faint,
		Accent:        p.blue,
		Warning:       p.yellow,
		Info:          p.cyan,
		CategoryColors: map[string]string{
			"normal":   p.comment,
			"fire":     p.orange,
			"water":    p.blue,
			"electric": p.yellow,
			"grass":    p.green,
			"ice":      p.cyan,
			"fighting": p.red,
			"poison":   p.magenta,
			"ground":   p.yellow,
			"flying":   p.cyan,
			"psychic":  p.magenta,
			"bug":      p.green,
			"rock":     p.faint,
			"ghost":    p.magenta,
			"dragon":   p.blue,
			"dark":     p.faint,
			"steel":    p.comment,
			"fairy":    p.red,
		},
	}
}

// Cycle order for the T key; the first entry is the fallback.
var themeList = []Theme{
	// https://github.com/EdenEast/nightfox.nvim
	palette{
		bg0: "#131a24", bg1: "#192330", bg2: "#212e3f", bg3: "#29394f",
		sel: "#2b3b51", selFg: "#cdcecf", border: "#39506d",
		fg: "#cdcecf", comment: "#738091", faint: "#71839b",
		red: "#c94f6d", orange: "#f4a261", yellow: "#dbc074", green: "#81b29a",
		cyan: "#63cdcf", blue: "#719cd6", magenta: "#9d79d6",
	}.theme("Nightfox"),

	// https://github.com/rebelot/kanagawa.nvim
	palette{
		bg0: "#16161D", bg1: "#1F1F28", bg2: "#2A2A37", bg3: "#2A2A37",
		sel: "#2D4F67", selFg: "#DCD7BA", border: "#54546D",
		fg: "#DCD7BA", comment: "#C8C093", faint: "#727169",
		red: "#E46876", orange: "#FFA066", yellow: "#E6C384", green: "#98BB6C",
		cyan: "#7FB4CA", blue: "#7E9CD8", magenta: "#957FB8",
	}.theme("Kanagawa"),

	// Tailwind slate with sky selection.
	palette{
		bg0: "#020617", bg1: "#0f172a", bg2: "#1e293b", bg3: "#283548",
		sel: "#0284c7", selFg: "#f8fafc", border: "#334155",
		fg: "#f1f5f9", comment: "#94a3b8", faint: "#64748b",
		red: "#ef4444", orange: "#f97316", yellow: "#f59e0b", green: "#22c55e",
		cyan: "#06b6d4", blue: "#38bdf8", magenta: "#a855f7",
	}.theme("Slate"),
}

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range themeList {
		if t.Name == name {
			return t
		}
	}
	return themeList[0]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, t := range themeList {
		if t.Name == current {
			return themeList[(i+1)%len(themeList)].Name
		}
	}
	return themeList[0].Name
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themeList))
	for i, t := range themeList {
		names[i] = t.Name
	}
	return names
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	InfoText    lipgloss.Style

	Header lipgloss.Style
	Logo   lipgloss.Style

	categoryColors map[string]string
	background     string
	muted          string
}

func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		WarningText: fg(t.Warning),
		InfoText:    fg(t.Info),
		Header:      fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:        fg(t.Warning).Bold(true),

		categoryColors: t.CategoryColors,
		background:     t.Background,
		muted:          t.Muted,
	}
}

// CategoryStyle returns the badge style for a category. Unknown categories
// use the muted color.
func (s Styles) CategoryStyle(category string) lipgloss.Style {
	color := s.categoryColors[category]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground paints every text style onto bgColor so nothing renders
// with a transparent background inside a filled bar.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}
