package types

import (
	"cmp"
	"fmt"
	"strings"
)

// RecordID is a small, copyable handle referring to a parcel record held by
// the arena. Indexes store RecordIDs, never the records themselves.
type RecordID uint32

// InvalidRecord is never handed out by the arena.
const InvalidRecord RecordID = ^RecordID(0)

// Parcel is one land-registry record.
//
// City, Address, Region and ID are immutable once the parcel is registered.
// Owner and Sequence change together on every real ownership transfer.
type Parcel struct {
	City     string
	Address  string
	Region   string
	ID       uint64
	Owner    string // "" means unowned
	Sequence uint64 // recency of the current ownership state
}

// Location returns the primary key of the parcel.
func (p Parcel) Location() LocationKey {
	return LocationKey{City: p.City, Address: p.Address}
}

// RegionKey returns the secondary key of the parcel.
func (p Parcel) RegionKey() RegionKey {
	return RegionKey{Region: p.Region, ID: p.ID}
}

func (p Parcel) String() string {
	owner := p.Owner
	if owner == "" {
		owner = "-"
	}
	return fmt.Sprintf("%s, %s [%s #%d] owner=%s seq=%d",
		p.City, p.Address, p.Region, p.ID, owner, p.Sequence)
}

// LocationKey is the primary composite key: (city, address).
type LocationKey struct {
	City    string
	Address string
}

// Valid reports whether both fields are non-empty.
func (k LocationKey) Valid() bool { return k.City != "" && k.Address != "" }

func (k LocationKey) String() string { return k.City + "/" + k.Address }

// RegionKey is the secondary composite key: (region, identifier).
type RegionKey struct {
	Region string
	ID     uint64
}

// Valid reports whether the region is non-empty. Any identifier is valid.
func (k RegionKey) Valid() bool { return k.Region != "" }

func (k RegionKey) String() string { return fmt.Sprintf("%s/%d", k.Region, k.ID) }

// CompareLocation orders location keys by city, then address (byte order).
func CompareLocation(a, b LocationKey) int {
	if c := strings.Compare(a.City, b.City); c != 0 {
		return c
	}
	return strings.Compare(a.Address, b.Address)
}

// CompareRegion orders region keys by region (byte order), then numeric ID.
func CompareRegion(a, b RegionKey) int {
	if c := strings.Compare(a.Region, b.Region); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
