package registry

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/joshuapare/landkit/internal/fold"
	"github.com/joshuapare/landkit/pkg/types"
)

// ListByLocation returns a view over every parcel in ascending
// (city, address) order.
func (r *Registry) ListByLocation() *Iterator {
	return newIterator(r.Parcels())
}

// Parcels returns copies of every parcel in ascending (city, address) order.
func (r *Registry) Parcels() []types.Parcel {
	out := make([]types.Parcel, 0, r.byLocation.Len())
	r.byLocation.Ascend(func(_ types.LocationKey, rid types.RecordID) bool {
		out = append(out, *r.records.MustGet(rid))
		return true
	})
	return out
}

// ListByOwner returns a view over the parcels whose owner equals owner under
// ASCII case folding, oldest ownership stamp first.
func (r *Registry) ListByOwner(owner string) *Iterator {
	var owned []types.Parcel
	r.byRegion.Ascend(func(_ types.RegionKey, rid types.RecordID) bool {
		if p := r.records.MustGet(rid); fold.EqualASCII(p.Owner, owner) {
			owned = append(owned, *p)
		}
		return true
	})
	slices.SortFunc(owned, func(a, b types.Parcel) int {
		return cmp.Compare(a.Sequence, b.Sequence)
	})
	return newIterator(owned)
}

// CountByOwner returns the number of parcels whose owner equals owner under
// ASCII case folding.
func (r *Registry) CountByOwner(owner string) int {
	n := 0
	r.records.Each(func(_ types.RecordID, p *types.Parcel) bool {
		if fold.EqualASCII(p.Owner, owner) {
			n++
		}
		return true
	})
	return n
}

// Dump writes one line per parcel, in location order, to w.
func (r *Registry) Dump(w io.Writer) error {
	for _, p := range r.Parcels() {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}
