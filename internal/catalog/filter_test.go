package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleList() []Entity {
	return []Entity{
		{Name: "bulbasaur", Categories: []string{"grass", "poison"}, Height: 7, Weight: 69},
		{Name: "ivysaur", Categories: []string{"grass", "poison"}, Height: 10, Weight: 130},
		{Name: "venusaur", Categories: []string{"grass", "poison"}, Height: 20, Weight: 1000},
		{Name: "charmander", Categories: []string{"fire"}, Height: 6, Weight: 85},
		{Name: "charizard", Categories: []string{"fire", "flying"}, Height: 17, Weight: 905},
		{Name: "onix", Categories: []string{"rock", "ground"}, Height: 88, Weight: 2100},
		{Name: "squirtle", Categories: []string{"water"}, Height: 5, Weight: 90},
	}
}

func names(list []Entity) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	list := sampleList()
	got := Filter(list, Query{})
	if diff := cmp.Diff(list, got); diff != "" {
		t.Fatalf("Filter(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	list := sampleList()
	queries := []Query{
		{Search: "saur"},
		{Category: "fire"},
		{Bucket: BucketMedium},
		{Search: "1", Category: "grass", Bucket: BucketMedium},
	}
	for _, q := range queries {
		once := Filter(list, q)
		twice := Filter(once, q)
		again := Filter(list, q)
		require.Equal(t, names(once), names(twice), "query %+v", q)
		require.Equal(t, names(once), names(again), "query %+v", q)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := sampleList()
	before := names(list)
	_ = Filter(list, Query{Search: "char", Bucket: BucketShort})
	require.Equal(t, before, names(list))
}

func TestFilter_TextMatchesNameCaseInsensitive(t *testing.T) {
	got := Filter(sampleList(), Query{Search: "CHAR"})
	require.Equal(t, []string{"charmander", "charizard"}, names(got))
}

func TestFilter_TextMatchesNameOrHeight(t *testing.T) {
	list := []Entity{
		{Name: "abc", Height: 10},
		{Name: "xyz10", Height: 3},
		{Name: "other", Height: 7},
	}
	got := Filter(list, Query{Search: "10"})
	require.Equal(t, []string{"abc", "xyz10"}, names(got))
}

func TestFilter_HeightMatchIsSubstring(t *testing.T) {
	list := []Entity{{Name: "a", Height: 110}, {Name: "b", Height: 1}, {Name: "c", Height: 21}}
	require.Equal(t, []string{"a", "b", "c"}, names(Filter(list, Query{Search: "1"})))
	require.Equal(t, []string{"a"}, names(Filter(list, Query{Search: "11"})))
}

func TestFilter_Category(t *testing.T) {
	got := Filter(sampleList(), Query{Category: "poison"})
	require.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur"}, names(got))

	got = Filter(sampleList(), Query{Category: "dragon"})
	require.Empty(t, got)
}

func TestFilter_BucketBoundaries(t *testing.T) {
	cases := []struct {
		height int
		want   Bucket
	}{
		{9, BucketShort},
		{10, BucketMedium},
		{20, BucketMedium},
		{21, BucketTall},
	}
	for _, tc := range cases {
		for _, b := range []Bucket{BucketShort, BucketMedium, BucketTall} {
			got := b.Matches(tc.height)
			if got != (b == tc.want) {
				t.Fatalf("Bucket(%s).Matches(%d) = %v, want %v", b, tc.height, got, b == tc.want)
			}
		}
		if !BucketAny.Matches(tc.height) {
			t.Fatalf("BucketAny.Matches(%d) = false, want true", tc.height)
		}
	}
}

func TestFilter_Conjunction(t *testing.T) {
	got := Filter(sampleList(), Query{Search: "saur", Category: "grass", Bucket: BucketMedium})
	require.Equal(t, []string{"ivysaur", "venusaur"}, names(got))
}

func TestFilter_ShortBucketScenario(t *testing.T) {
	list := []Entity{
		{Name: "bulbasaur", Height: 7},
		{Name: "charmander", Height: 6},
		{Name: "squirtle", Height: 5},
	}
	vs := DefaultViewState().WithBucket(BucketShort)
	got := DeriveList(list, vs)
	require.Equal(t, []string{"bulbasaur", "charmander", "squirtle"}, names(got))
}

func TestFilter_NoMatchesYieldsEmpty(t *testing.T) {
	got := Filter(sampleList(), Query{Search: "zzz"})
	require.NotNil(t, got)
	require.Empty(t, got)
}
