package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(\"\").Name = %q, want Nightfox", got)
	}
}

func TestThemesColorEveryCategory(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range []string{"normal", "fire", "water", "grass", "electric", "ice",
			"fighting", "poison", "ground", "flying", "psychic", "bug",
			"rock", "ghost", "dragon", "dark", "steel", "fairy"} {
			if th.CategoryColors[c] == "" {
				t.Fatalf("%s: no color for category %q", name, c)
			}
		}
	}
}

func TestCategoryStyle_UnknownUsesMuted(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	got := styles.CategoryStyle("shadow").GetBackground()
	want := lipgloss.Color(th.Muted)
	if got != want {
		t.Fatalf("unknown category background = %v, want %v", got, want)
	}
}

func TestWithBackgroundKeepsCategoryColors(t *testing.T) {
	th := GetTheme("Kanagawa")
	styles := th.Styles().WithBackground(th.Surface)
	if styles.categoryColors["fire"] != th.CategoryColors["fire"] || styles.categoryColors["fire"] == "" {
		t.Fatalf("fire color = %q, want %q", styles.categoryColors["fire"], th.CategoryColors["fire"])
	}
}
