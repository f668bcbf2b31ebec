package index

import (
	"slices"
	"sort"
	"unsafe"

	"github.com/joshuapare/landkit/pkg/types"
)

// defaultSliceCap is the initial capacity when no hint is given.
const defaultSliceCap = 64

// SliceIndex keeps entries in a slice sorted by key.
//
// Lookups are a binary search; Insert and Remove shift the tail of the slice.
// For the registry sizes this package targets (thousands of parcels) the
// memmove is cheaper than B-tree node management, and ascending iteration is a
// plain slice walk.
type SliceIndex[K any] struct {
	entries []entry[K]
	cmp     CompareFunc[K]
}

// NewSliceIndex creates a SliceIndex ordered by cmp.
func NewSliceIndex[K any](cmp CompareFunc[K], capHint int) *SliceIndex[K] {
	if capHint <= 0 {
		capHint = defaultSliceCap
	}
	return &SliceIndex[K]{
		entries: make([]entry[K], 0, capHint),
		cmp:     cmp,
	}
}

// search returns the insertion point for key and whether key is present there.
func (s *SliceIndex[K]) search(key K) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.cmp(s.entries[i].key, key) >= 0
	})
	return i, i < len(s.entries) && s.cmp(s.entries[i].key, key) == 0
}

// Get implements ReadOnlyIndex.
func (s *SliceIndex[K]) Get(key K) (types.RecordID, bool) {
	i, ok := s.search(key)
	if !ok {
		return types.InvalidRecord, false
	}
	return s.entries[i].id, true
}

// Insert implements Index.
func (s *SliceIndex[K]) Insert(key K, id types.RecordID) bool {
	i, ok := s.search(key)
	if ok {
		return false
	}
	s.entries = slices.Insert(s.entries, i, entry[K]{key: key, id: id})
	return true
}

// Remove implements Index.
func (s *SliceIndex[K]) Remove(key K) (types.RecordID, bool) {
	i, ok := s.search(key)
	if !ok {
		return types.InvalidRecord, false
	}
	id := s.entries[i].id
	s.entries = slices.Delete(s.entries, i, i+1)
	return id, true
}

// Ascend implements ReadOnlyIndex.
func (s *SliceIndex[K]) Ascend(fn func(K, types.RecordID) bool) {
	for _, e := range s.entries {
		if !fn(e.key, e.id) {
			return
		}
	}
}

// Len implements ReadOnlyIndex.
func (s *SliceIndex[K]) Len() int { return len(s.entries) }

// Stats implements ReadOnlyIndex.
func (s *SliceIndex[K]) Stats() Stats {
	var zero entry[K]
	return Stats{
		Entries:     len(s.entries),
		BytesApprox: cap(s.entries) * int(unsafe.Sizeof(zero)),
		Impl:        "SliceIndex",
	}
}
