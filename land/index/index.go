package index

import "github.com/joshuapare/landkit/pkg/types"

// ReadOnlyIndex is the query side of an ordered key → record index.
type ReadOnlyIndex[K any] interface {
	// Get returns the record registered under key.
	Get(key K) (types.RecordID, bool)

	// Ascend calls fn for every entry in ascending key order until fn
	// returns false.
	Ascend(fn func(key K, id types.RecordID) bool)

	// Len returns the number of entries.
	Len() int

	// Stats returns index statistics (size, impl type).
	Stats() Stats
}

// Index is the full mutable interface. Keys are unique: an index never holds
// two entries that compare equal.
type Index[K any] interface {
	ReadOnlyIndex[K]

	// Insert registers id under key at its sorted position.
	// Returns false and leaves the index untouched if key is already present.
	Insert(key K, id types.RecordID) bool

	// Remove deletes the entry for key and returns the record it pointed to.
	// Safe to call even if the entry doesn't exist.
	Remove(key K) (types.RecordID, bool)
}

// CompareFunc orders keys: negative if a < b, zero if equal, positive if a > b.
type CompareFunc[K any] func(a, b K) int

// Kind selects an Index implementation.
type Kind int

const (
	// KindSlice is a sorted slice searched with binary search (default).
	KindSlice Kind = iota
	// KindBTree is an in-memory B-tree.
	KindBTree
)

func (k Kind) String() string {
	switch k {
	case KindSlice:
		return "slice"
	case KindBTree:
		return "btree"
	default:
		return "unknown"
	}
}

// ParseKind maps a textual name ("slice", "btree") to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "slice", "":
		return KindSlice, true
	case "btree":
		return KindBTree, true
	default:
		return KindSlice, false
	}
}

// New creates an empty index of the requested kind.
func New[K any](kind Kind, cmp CompareFunc[K], capHint int) Index[K] {
	if kind == KindBTree {
		return NewBTreeIndex(cmp, defaultDegree)
	}
	return NewSliceIndex(cmp, capHint)
}

// Stats reports index metrics.
type Stats struct {
	Entries     int    // Number of entries
	BytesApprox int    // Approximate memory usage of the index structure (best effort)
	Impl        string // Implementation name
}

// entry is a single key → record mapping shared by both implementations.
type entry[K any] struct {
	key K
	id  types.RecordID
}
