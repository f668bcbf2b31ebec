package registry

import (
	"iter"

	"github.com/joshuapare/landkit/pkg/types"
)

// Iterator is a forward-only cursor over a fixed list of parcels captured
// when the view was built.
//
// Accessors return zero values once the cursor is past the last parcel; they
// never fail and never change state.
type Iterator struct {
	items []types.Parcel
	pos   int
}

func newIterator(items []types.Parcel) *Iterator {
	return &Iterator{items: items}
}

// AtEnd reports whether the cursor has moved past the last parcel.
func (it *Iterator) AtEnd() bool { return it.pos >= len(it.items) }

// Next advances the cursor. It is a no-op at the end.
func (it *Iterator) Next() {
	if !it.AtEnd() {
		it.pos++
	}
}

// Parcel returns the current parcel, or false at the end.
func (it *Iterator) Parcel() (types.Parcel, bool) {
	if it.AtEnd() {
		return types.Parcel{}, false
	}
	return it.items[it.pos], true
}

func (it *Iterator) current() types.Parcel {
	p, _ := it.Parcel()
	return p
}

// City returns the current parcel's city, or "" at the end.
func (it *Iterator) City() string { return it.current().City }

// Address returns the current parcel's address, or "" at the end.
func (it *Iterator) Address() string { return it.current().Address }

// Region returns the current parcel's region, or "" at the end.
func (it *Iterator) Region() string { return it.current().Region }

// ID returns the current parcel's identifier, or 0 at the end.
func (it *Iterator) ID() uint64 { return it.current().ID }

// Owner returns the current parcel's owner, or "" at the end.
func (it *Iterator) Owner() string { return it.current().Owner }

// Len returns the total number of parcels in the view.
func (it *Iterator) Len() int { return len(it.items) }

// All yields every parcel of the view in order, independent of the cursor
// position. It does not move the cursor.
func (it *Iterator) All() iter.Seq[types.Parcel] {
	return func(yield func(types.Parcel) bool) {
		for _, p := range it.items {
			if !yield(p) {
				return
			}
		}
	}
}
