package registry

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/landkit/internal/logger"
	"github.com/joshuapare/landkit/land/index"
	"github.com/joshuapare/landkit/land/store"
	"github.com/joshuapare/landkit/pkg/types"
)

// Registry is the dual-indexed parcel registry.
type Registry struct {
	records    *store.Store
	byLocation index.Index[types.LocationKey]
	byRegion   index.Index[types.RegionKey]
	nextSeq    uint64
	kind       index.Kind
	log        *slog.Logger
}

// New creates an empty registry. A nil opts uses DefaultOptions.
func New(opts *Options) *Registry {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Registry{
		records:    store.New(opts.CapacityHint),
		byLocation: index.New(opts.IndexKind, types.CompareLocation, opts.CapacityHint),
		byRegion:   index.New(opts.IndexKind, types.CompareRegion, opts.CapacityHint),
		kind:       opts.IndexKind,
		log:        opts.Logger,
	}
}

// logger returns the configured logger, or the package logger as it is at
// the time of the call.
func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return logger.L
}

// nextSequence hands out the next ownership stamp.
func (r *Registry) nextSequence() uint64 {
	seq := r.nextSeq
	r.nextSeq++
	return seq
}

// Add registers a new, unowned parcel.
//
// Both keys are checked before either index is touched, so a conflict on the
// region key after the location key was found free leaves nothing behind.
func (r *Registry) Add(city, address, region string, id uint64) error {
	loc := types.LocationKey{City: city, Address: address}
	reg := types.RegionKey{Region: region, ID: id}
	if !loc.Valid() || !reg.Valid() {
		return fmt.Errorf("add %s %s: %w", loc, reg, types.ErrEmptyKey)
	}
	if _, ok := r.byLocation.Get(loc); ok {
		return types.NewError(types.ErrKindConflict, "add: location %s already registered", loc)
	}
	if _, ok := r.byRegion.Get(reg); ok {
		return types.NewError(types.ErrKindConflict, "add: region key %s already registered", reg)
	}

	rid := r.records.Alloc(types.Parcel{
		City:     city,
		Address:  address,
		Region:   region,
		ID:       id,
		Sequence: r.nextSequence(),
	})
	if !r.byLocation.Insert(loc, rid) {
		panic(fmt.Sprintf("registry: location %s appeared between check and insert", loc))
	}
	if !r.byRegion.Insert(reg, rid) {
		panic(fmt.Sprintf("registry: region key %s appeared between check and insert", reg))
	}

	r.logger().Debug("parcel added", "city", city, "address", address, "region", region, "id", id, "record", rid)
	return nil
}

// DeleteByLocation removes the parcel registered under (city, address).
func (r *Registry) DeleteByLocation(city, address string) error {
	rid, err := r.findLocation(city, address)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	r.remove(rid)
	return nil
}

// DeleteByRegion removes the parcel registered under (region, id).
func (r *Registry) DeleteByRegion(region string, id uint64) error {
	rid, err := r.findRegion(region, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	r.remove(rid)
	return nil
}

// remove drops rid from both indexes and frees its arena slot. The keys come
// from the record itself, so both removals target the same record.
func (r *Registry) remove(rid types.RecordID) {
	p := r.records.MustGet(rid)
	loc, reg := p.Location(), p.RegionKey()

	if got, ok := r.byLocation.Remove(loc); !ok || got != rid {
		panic(fmt.Sprintf("registry: location index out of sync for %s", loc))
	}
	if got, ok := r.byRegion.Remove(reg); !ok || got != rid {
		panic(fmt.Sprintf("registry: region index out of sync for %s", reg))
	}
	if err := r.records.Free(rid); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}

	r.logger().Debug("parcel deleted", "city", loc.City, "address", loc.Address,
		"region", reg.Region, "id", reg.ID, "record", rid)
}

// findLocation validates the location key and resolves it to a record.
func (r *Registry) findLocation(city, address string) (types.RecordID, error) {
	loc := types.LocationKey{City: city, Address: address}
	if !loc.Valid() {
		return types.InvalidRecord, fmt.Errorf("location %s: %w", loc, types.ErrEmptyKey)
	}
	rid, ok := r.byLocation.Get(loc)
	if !ok {
		return types.InvalidRecord, fmt.Errorf("location %s: %w", loc, types.ErrNotFound)
	}
	return rid, nil
}

// findRegion validates the region key and resolves it to a record.
func (r *Registry) findRegion(region string, id uint64) (types.RecordID, error) {
	reg := types.RegionKey{Region: region, ID: id}
	if !reg.Valid() {
		return types.InvalidRecord, fmt.Errorf("region key %s: %w", reg, types.ErrEmptyKey)
	}
	rid, ok := r.byRegion.Get(reg)
	if !ok {
		return types.InvalidRecord, fmt.Errorf("region key %s: %w", reg, types.ErrNotFound)
	}
	return rid, nil
}

// Len returns the number of registered parcels.
func (r *Registry) Len() int { return r.records.Len() }

// LocationIndex exposes the location index read-only.
func (r *Registry) LocationIndex() index.ReadOnlyIndex[types.LocationKey] { return r.byLocation }

// RegionIndex exposes the region index read-only.
func (r *Registry) RegionIndex() index.ReadOnlyIndex[types.RegionKey] { return r.byRegion }

// Record returns a copy of the arena record with the given ID.
func (r *Registry) Record(id types.RecordID) (types.Parcel, error) {
	p, err := r.records.Get(id)
	if err != nil {
		return types.Parcel{}, err
	}
	return *p, nil
}

// NextSequence returns the stamp the next Add or ownership change will use.
func (r *Registry) NextSequence() uint64 { return r.nextSeq }
