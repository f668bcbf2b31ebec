package verify

import (
	"fmt"

	"github.com/joshuapare/landkit/land/index"
	"github.com/joshuapare/landkit/pkg/types"
)

// Source is the read-only view of a registry the checks need.
// *registry.Registry implements it.
type Source interface {
	Len() int
	LocationIndex() index.ReadOnlyIndex[types.LocationKey]
	RegionIndex() index.ReadOnlyIndex[types.RegionKey]
	Record(id types.RecordID) (types.Parcel, error)
	NextSequence() uint64
}

// ValidationError describes the first broken invariant found by a check.
type ValidationError struct {
	Type    string
	Message string
	Details map[string]any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// All validates every invariant in one call.
// Returns the first error encountered, or nil if all checks pass.
func All(src Source) error {
	if err := LocationIndex(src); err != nil {
		return err
	}
	if err := RegionIndex(src); err != nil {
		return err
	}
	if err := CrossIndex(src); err != nil {
		return err
	}
	return Sequences(src)
}

// LocationIndex checks ordering and key/record agreement of the location index.
func LocationIndex(src Source) error {
	return checkIndex(src, "LocationIndex", src.LocationIndex(), types.CompareLocation,
		func(p types.Parcel) types.LocationKey { return p.Location() })
}

// RegionIndex checks ordering and key/record agreement of the region index.
func RegionIndex(src Source) error {
	return checkIndex(src, "RegionIndex", src.RegionIndex(), types.CompareRegion,
		func(p types.Parcel) types.RegionKey { return p.RegionKey() })
}

func checkIndex[K comparable](
	src Source,
	name string,
	idx index.ReadOnlyIndex[K],
	cmp func(a, b K) int,
	keyOf func(types.Parcel) K,
) error {
	var (
		prev    K
		hasPrev bool
		verr    *ValidationError
	)
	idx.Ascend(func(key K, rid types.RecordID) bool {
		if hasPrev && cmp(prev, key) >= 0 {
			verr = &ValidationError{
				Type:    name,
				Message: fmt.Sprintf("keys not strictly ascending: %v then %v", prev, key),
				Details: map[string]any{"prev": prev, "key": key},
			}
			return false
		}
		p, err := src.Record(rid)
		if err != nil {
			verr = &ValidationError{
				Type:    name,
				Message: fmt.Sprintf("entry %v references dead record %d: %v", key, rid, err),
				Details: map[string]any{"key": key, "record": rid},
			}
			return false
		}
		if got := keyOf(p); got != key {
			verr = &ValidationError{
				Type:    name,
				Message: fmt.Sprintf("entry %v points at record %d whose key is %v", key, rid, got),
				Details: map[string]any{"key": key, "record": rid, "recordKey": got},
			}
			return false
		}
		prev, hasPrev = key, true
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}

// CrossIndex checks that both indexes reference exactly the same records.
func CrossIndex(src Source) error {
	byLocation := make(map[types.RecordID]struct{}, src.Len())
	src.LocationIndex().Ascend(func(_ types.LocationKey, rid types.RecordID) bool {
		byLocation[rid] = struct{}{}
		return true
	})

	if n := src.LocationIndex().Len(); n != len(byLocation) {
		return &ValidationError{
			Type:    "CrossIndex",
			Message: fmt.Sprintf("location index has %d entries but %d distinct records", n, len(byLocation)),
		}
	}
	if n := src.RegionIndex().Len(); n != len(byLocation) {
		return &ValidationError{
			Type:    "CrossIndex",
			Message: fmt.Sprintf("region index has %d entries, location index %d", n, len(byLocation)),
			Details: map[string]any{"region": n, "location": len(byLocation)},
		}
	}
	if src.Len() != len(byLocation) {
		return &ValidationError{
			Type:    "CrossIndex",
			Message: fmt.Sprintf("registry reports %d parcels, indexes hold %d", src.Len(), len(byLocation)),
		}
	}

	var verr *ValidationError
	src.RegionIndex().Ascend(func(key types.RegionKey, rid types.RecordID) bool {
		if _, ok := byLocation[rid]; !ok {
			verr = &ValidationError{
				Type:    "CrossIndex",
				Message: fmt.Sprintf("record %d (%v) missing from location index", rid, key),
				Details: map[string]any{"record": rid, "key": key},
			}
			return false
		}
		delete(byLocation, rid)
		return true
	})
	if verr != nil {
		return verr
	}
	if len(byLocation) != 0 {
		return &ValidationError{
			Type:    "CrossIndex",
			Message: fmt.Sprintf("%d records missing from region index", len(byLocation)),
		}
	}
	return nil
}

// Sequences checks that ownership stamps are unique and already issued.
func Sequences(src Source) error {
	next := src.NextSequence()
	seen := make(map[uint64]types.LocationKey, src.Len())

	var verr *ValidationError
	src.LocationIndex().Ascend(func(key types.LocationKey, rid types.RecordID) bool {
		p, err := src.Record(rid)
		if err != nil {
			verr = &ValidationError{Type: "Sequences", Message: err.Error()}
			return false
		}
		if p.Sequence >= next {
			verr = &ValidationError{
				Type:    "Sequences",
				Message: fmt.Sprintf("%v has stamp %d, next stamp is %d", key, p.Sequence, next),
			}
			return false
		}
		if other, dup := seen[p.Sequence]; dup {
			verr = &ValidationError{
				Type:    "Sequences",
				Message: fmt.Sprintf("stamp %d shared by %v and %v", p.Sequence, other, key),
			}
			return false
		}
		seen[p.Sequence] = key
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}
