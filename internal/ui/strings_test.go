package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  bulbasaur ", 0, "bulbasaur"},
		{"onix", 10, "onix"},
		{"charmander", 7, "char..."},
		{"charmander", 3, "cha"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	url := "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"
	got := truncateMiddle(url, 21)
	if n := len([]rune(got)); n != 21 {
		t.Fatalf("got %q (%d runes), want 21", got, n)
	}
	if got[:10] != "https://ra" {
		t.Fatalf("prefix lost: %q", got)
	}
	if got[len(got)-6:] != "25.png" {
		t.Fatalf("suffix lost: %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight long = %q", got)
	}
}

func TestEmptyDash(t *testing.T) {
	if got := emptyDash(" "); got != "-" {
		t.Fatalf("emptyDash blank = %q", got)
	}
	if got := emptyDash("x"); got != "x" {
		t.Fatalf("emptyDash = %q", got)
	}
}
