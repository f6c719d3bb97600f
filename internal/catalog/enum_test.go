package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"", "  ", "all", "ANY"} {
		c, err := ParseCategory(in)
		require.NoError(t, err)
		require.Equal(t, CategoryAny, c)
	}

	c, err := ParseCategory("  Fire ")
	require.NoError(t, err)
	require.Equal(t, Category("fire"), c)

	_, err = ParseCategory("lava")
	require.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestParseCategory_SuggestsCloseMatches(t *testing.T) {
	_, err := ParseCategory("psy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "did you mean psychic")

	_, err = ParseCategory("fairyy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fairy")
}

func TestSuggestCategories(t *testing.T) {
	require.Nil(t, SuggestCategories("", 3))
	require.Nil(t, SuggestCategories("fire", 0))

	got := SuggestCategories("gr", 5)
	require.NotEmpty(t, got)
	for _, c := range got {
		require.True(t, strings.Contains(string(c), "g"), "unexpected suggestion %q", c)
	}
	require.LessOrEqual(t, len(SuggestCategories("o", 2)), 2)
}

func TestCategoryCycle(t *testing.T) {
	require.Equal(t, Categories[0], NextCategory(CategoryAny))
	require.Equal(t, CategoryAny, NextCategory(Categories[len(Categories)-1]))
	require.Equal(t, Categories[len(Categories)-1], PrevCategory(CategoryAny))
	require.Equal(t, CategoryAny, PrevCategory(Categories[0]))

	seen := map[Category]bool{}
	c := CategoryAny
	for range len(Categories) + 1 {
		c = NextCategory(c)
		seen[c] = true
	}
	require.Len(t, seen, len(Categories)+1)
}

func TestParseBucket(t *testing.T) {
	cases := map[string]Bucket{"": BucketAny, "short": BucketShort, " Medium": BucketMedium, "TALL": BucketTall, "all": BucketAny}
	for in, want := range cases {
		got, err := ParseBucket(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseBucket("huge")
	require.ErrorIs(t, err, ErrUnknownBucket)
}

func TestBucketNext(t *testing.T) {
	require.Equal(t, BucketShort, BucketAny.Next())
	require.Equal(t, BucketMedium, BucketShort.Next())
	require.Equal(t, BucketTall, BucketMedium.Next())
	require.Equal(t, BucketAny, BucketTall.Next())
	require.Equal(t, BucketAny, Bucket("bogus").Next())
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("")
	require.NoError(t, err)
	require.Equal(t, SortAsc, o)

	o, err = ParseSortOrder("DESC")
	require.NoError(t, err)
	require.Equal(t, SortDesc, o)

	_, err = ParseSortOrder("random")
	require.ErrorIs(t, err, ErrUnknownSortOrder)

	require.Equal(t, SortDesc, SortAsc.Toggle())
	require.Equal(t, SortAsc, SortDesc.Toggle())
}

func TestEntityDisplayUnits(t *testing.T) {
	e := Entity{Name: "bulbasaur", Categories: []string{"grass", "poison"}, Height: 7, Weight: 69}
	require.Equal(t, "0.7", e.HeightMeters())
	require.Equal(t, "6.9", e.WeightKilograms())
	require.Equal(t, "grass, poison", e.CategoryLabel())

	e = Entity{Height: 10, Weight: 1000}
	require.Equal(t, "1", e.HeightMeters())
	require.Equal(t, "100", e.WeightKilograms())
}

func TestFindByName(t *testing.T) {
	e, ok := FindByName(sampleList(), " Onix ")
	require.True(t, ok)
	require.Equal(t, 88, e.Height)

	_, ok = FindByName(sampleList(), "mew")
	require.False(t, ok)
}

func TestEntityDetailFields(t *testing.T) {
	e := Entity{Name: "mr-mime", ImageURL: "u", Categories: []string{"psychic", "fairy"}, Height: 13, Weight: 545}
	require.Equal(t, "Mr-Mime", e.DisplayName())
	require.Equal(t, []Field{
		{Label: "Image", Value: "u"},
		{Label: "Types", Value: "psychic, fairy"},
		{Label: "Height", Value: "1.3 m"},
		{Label: "Weight", Value: "54.5 kg"},
	}, e.DetailFields())
}
