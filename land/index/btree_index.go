package index

import (
	"unsafe"

	"github.com/google/btree"

	"github.com/joshuapare/landkit/pkg/types"
)

const (
	// defaultDegree is the B-tree degree used by New.
	defaultDegree = 32

	// estimatedNodeOverhead approximates per-entry B-tree node bookkeeping
	// (child pointers and slice headers amortised over the node).
	estimatedNodeOverhead = 16
)

// BTreeIndex keeps entries in a github.com/google/btree generic B-tree.
//
// Insert and Remove are O(log n) without shifting, which pays off once the
// registry holds enough parcels that SliceIndex's memmove dominates.
type BTreeIndex[K any] struct {
	tree *btree.BTreeG[entry[K]]
	cmp  CompareFunc[K]
}

// NewBTreeIndex creates a BTreeIndex ordered by cmp.
func NewBTreeIndex[K any](cmp CompareFunc[K], degree int) *BTreeIndex[K] {
	if degree < 2 {
		degree = defaultDegree
	}
	return &BTreeIndex[K]{
		tree: btree.NewG(degree, func(a, b entry[K]) bool {
			return cmp(a.key, b.key) < 0
		}),
		cmp: cmp,
	}
}

// Get implements ReadOnlyIndex.
func (b *BTreeIndex[K]) Get(key K) (types.RecordID, bool) {
	e, ok := b.tree.Get(entry[K]{key: key})
	if !ok {
		return types.InvalidRecord, false
	}
	return e.id, true
}

// Insert implements Index.
func (b *BTreeIndex[K]) Insert(key K, id types.RecordID) bool {
	probe := entry[K]{key: key, id: id}
	if b.tree.Has(probe) {
		return false
	}
	b.tree.ReplaceOrInsert(probe)
	return true
}

// Remove implements Index.
func (b *BTreeIndex[K]) Remove(key K) (types.RecordID, bool) {
	e, ok := b.tree.Delete(entry[K]{key: key})
	if !ok {
		return types.InvalidRecord, false
	}
	return e.id, true
}

// Ascend implements ReadOnlyIndex.
func (b *BTreeIndex[K]) Ascend(fn func(K, types.RecordID) bool) {
	b.tree.Ascend(func(e entry[K]) bool {
		return fn(e.key, e.id)
	})
}

// Len implements ReadOnlyIndex.
func (b *BTreeIndex[K]) Len() int { return b.tree.Len() }

// Stats implements ReadOnlyIndex.
func (b *BTreeIndex[K]) Stats() Stats {
	var zero entry[K]
	n := b.tree.Len()
	return Stats{
		Entries:     n,
		BytesApprox: n * (int(unsafe.Sizeof(zero)) + estimatedNodeOverhead),
		Impl:        "BTreeIndex",
	}
}
