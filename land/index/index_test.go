package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/landkit/pkg/types"
)

// implementations returns a fresh location index for every implementation.
func implementations() map[string]func() Index[types.LocationKey] {
	return map[string]func() Index[types.LocationKey]{
		"SliceIndex": func() Index[types.LocationKey] { return New(KindSlice, types.CompareLocation, 0) },
		"BTreeIndex": func() Index[types.LocationKey] { return New(KindBTree, types.CompareLocation, 0) },
	}
}

func loc(city, addr string) types.LocationKey {
	return types.LocationKey{City: city, Address: addr}
}

func collect[K any](idx ReadOnlyIndex[K]) ([]K, []types.RecordID) {
	var keys []K
	var ids []types.RecordID
	idx.Ascend(func(k K, id types.RecordID) bool {
		keys = append(keys, k)
		ids = append(ids, id)
		return true
	})
	return keys, ids
}

func TestIndex_InsertGet(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			require.True(t, idx.Insert(loc("Prague", "Thakurova"), 1))
			require.True(t, idx.Insert(loc("Prague", "Evropska"), 2))
			require.True(t, idx.Insert(loc("Liberec", "Evropska"), 3))

			id, ok := idx.Get(loc("Prague", "Evropska"))
			require.True(t, ok)
			require.Equal(t, types.RecordID(2), id)

			_, ok = idx.Get(loc("Prague", "THAKUROVA"))
			require.False(t, ok, "lookups are case-sensitive")

			require.Equal(t, 3, idx.Len())
		})
	}
}

func TestIndex_InsertDuplicateRejected(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			require.True(t, idx.Insert(loc("Prague", "Technicka"), 1))
			require.False(t, idx.Insert(loc("Prague", "Technicka"), 9))

			id, ok := idx.Get(loc("Prague", "Technicka"))
			require.True(t, ok)
			require.Equal(t, types.RecordID(1), id, "duplicate insert must not overwrite")
			require.Equal(t, 1, idx.Len())
		})
	}
}

func TestIndex_AscendOrdered(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			idx.Insert(loc("Prague", "Thakurova"), 0)
			idx.Insert(loc("Prague", "Evropska"), 1)
			idx.Insert(loc("Prague", "Technicka"), 2)
			idx.Insert(loc("Plzen", "Evropska"), 3)
			idx.Insert(loc("Liberec", "Evropska"), 4)

			keys, ids := collect[types.LocationKey](idx)
			require.Equal(t, []types.LocationKey{
				loc("Liberec", "Evropska"),
				loc("Plzen", "Evropska"),
				loc("Prague", "Evropska"),
				loc("Prague", "Technicka"),
				loc("Prague", "Thakurova"),
			}, keys)
			require.Equal(t, []types.RecordID{4, 3, 1, 2, 0}, ids)
		})
	}
}

func TestIndex_AscendStopsEarly(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			idx.Insert(loc("A", "a"), 0)
			idx.Insert(loc("B", "b"), 1)
			idx.Insert(loc("C", "c"), 2)

			visited := 0
			idx.Ascend(func(types.LocationKey, types.RecordID) bool {
				visited++
				return visited < 2
			})
			require.Equal(t, 2, visited)
		})
	}
}

func TestIndex_Remove(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			idx.Insert(loc("Prague", "Thakurova"), 0)
			idx.Insert(loc("Prague", "Technicka"), 1)

			id, ok := idx.Remove(loc("Prague", "Technicka"))
			require.True(t, ok)
			require.Equal(t, types.RecordID(1), id)

			_, ok = idx.Remove(loc("Prague", "Technicka"))
			require.False(t, ok, "second remove is a miss")

			_, ok = idx.Get(loc("Prague", "Technicka"))
			require.False(t, ok)
			require.Equal(t, 1, idx.Len())

			// Re-inserting a removed key succeeds.
			require.True(t, idx.Insert(loc("Prague", "Technicka"), 7))
		})
	}
}

func TestIndex_Stats(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			idx := mk()
			idx.Insert(loc("A", "a"), 0)
			idx.Insert(loc("B", "b"), 1)

			stats := idx.Stats()
			require.Equal(t, 2, stats.Entries)
			require.Equal(t, name, stats.Impl)
			require.Positive(t, stats.BytesApprox)

			_, ok := idx.Remove(loc("A", "a"))
			require.True(t, ok)
			require.Equal(t, 1, idx.Stats().Entries)
		})
	}
}

func TestIndex_RegionKeys(t *testing.T) {
	for _, kind := range []Kind{KindSlice, KindBTree} {
		t.Run(kind.String(), func(t *testing.T) {
			idx := New(kind, types.CompareRegion, 0)
			idx.Insert(types.RegionKey{Region: "Dejvice", ID: 12345}, 0)
			idx.Insert(types.RegionKey{Region: "Dejvice", ID: 9873}, 1)
			idx.Insert(types.RegionKey{Region: "Tokyo City", ID: 12020203993}, 2)

			keys, _ := collect[types.RegionKey](idx)
			require.Equal(t, []types.RegionKey{
				{Region: "Dejvice", ID: 9873},
				{Region: "Dejvice", ID: 12345},
				{Region: "Tokyo City", ID: 12020203993},
			}, keys, "IDs compare numerically, not as text")
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("btree")
	require.True(t, ok)
	require.Equal(t, KindBTree, k)

	k, ok = ParseKind("")
	require.True(t, ok)
	require.Equal(t, KindSlice, k)

	_, ok = ParseKind("hash")
	require.False(t, ok)
	require.Equal(t, "unknown", Kind(42).String())
}
