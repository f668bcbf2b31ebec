package registry

import (
	"fmt"

	"github.com/joshuapare/landkit/internal/fold"
	"github.com/joshuapare/landkit/pkg/types"
)

// OwnerByLocation returns the current owner ("" when unowned) of the parcel
// at (city, address), exactly as stored.
func (r *Registry) OwnerByLocation(city, address string) (string, error) {
	rid, err := r.findLocation(city, address)
	if err != nil {
		return "", fmt.Errorf("owner: %w", err)
	}
	return r.records.MustGet(rid).Owner, nil
}

// OwnerByRegion returns the current owner ("" when unowned) of the parcel
// registered as (region, id), exactly as stored.
func (r *Registry) OwnerByRegion(region string, id uint64) (string, error) {
	rid, err := r.findRegion(region, id)
	if err != nil {
		return "", fmt.Errorf("owner: %w", err)
	}
	return r.records.MustGet(rid).Owner, nil
}

// ChangeOwnerByLocation transfers the parcel at (city, address) to owner.
func (r *Registry) ChangeOwnerByLocation(city, address, owner string) error {
	rid, err := r.findLocation(city, address)
	if err != nil {
		return fmt.Errorf("change owner: %w", err)
	}
	return r.transfer(rid, owner)
}

// ChangeOwnerByRegion transfers the parcel registered as (region, id) to owner.
func (r *Registry) ChangeOwnerByRegion(region string, id uint64, owner string) error {
	rid, err := r.findRegion(region, id)
	if err != nil {
		return fmt.Errorf("change owner: %w", err)
	}
	return r.transfer(rid, owner)
}

// transfer rewrites the owner and restamps the parcel. The no-op check is
// exact-case; owner listings fold case.
func (r *Registry) transfer(rid types.RecordID, owner string) error {
	p := r.records.MustGet(rid)
	if fold.Equal(p.Owner, owner) {
		return fmt.Errorf("change owner %s to %q: %w", p.Location(), owner, types.ErrUnchanged)
	}

	prev := p.Owner
	p.Owner = owner
	p.Sequence = r.nextSequence()

	r.logger().Debug("owner changed", "city", p.City, "address", p.Address,
		"from", prev, "to", owner, "seq", p.Sequence)
	return nil
}
