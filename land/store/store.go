// Package store is the record arena behind the registry.
//
// Every parcel record lives in exactly one slot of a Store and is addressed by
// a stable types.RecordID. Indexes keep RecordIDs only, so removing a record
// from one index can never leave the other pointing at released memory: a
// freed slot is simply marked free and its ID goes onto a free list for reuse.
package store

import (
	"fmt"

	"github.com/joshuapare/landkit/pkg/types"
)

// defaultCapacity is the number of slots preallocated when no hint is given.
const defaultCapacity = 64

type slot struct {
	rec  types.Parcel
	used bool
}

// Store owns parcel records. It is not safe for concurrent use.
type Store struct {
	slots []slot
	free  []types.RecordID // LIFO
	live  int
}

// New creates a Store with an optional capacity hint.
func New(capHint int) *Store {
	if capHint <= 0 {
		capHint = defaultCapacity
	}
	return &Store{slots: make([]slot, 0, capHint)}
}

// Alloc stores p in a free slot (reusing freed slots first) and returns its ID.
func (s *Store) Alloc(p types.Parcel) types.RecordID {
	s.live++
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[id] = slot{rec: p, used: true}
		return id
	}
	s.slots = append(s.slots, slot{rec: p, used: true})
	return types.RecordID(len(s.slots) - 1)
}

// Get returns a pointer to the live record with the given ID.
// The pointer is only valid until the next Alloc.
func (s *Store) Get(id types.RecordID) (*types.Parcel, error) {
	if int(id) >= len(s.slots) {
		return nil, fmt.Errorf("%w: %d", ErrBadRef, id)
	}
	sl := &s.slots[id]
	if !sl.used {
		return nil, fmt.Errorf("%w: %d", ErrFreed, id)
	}
	return &sl.rec, nil
}

// MustGet is Get for IDs taken from an index of the same registry, where a
// miss means the indexes and the arena disagree.
func (s *Store) MustGet(id types.RecordID) *types.Parcel {
	p, err := s.Get(id)
	if err != nil {
		panic(fmt.Sprintf("store: index references dead record: %v", err))
	}
	return p
}

// Free releases the record with the given ID. Its slot may be handed out again
// by a later Alloc.
func (s *Store) Free(id types.RecordID) error {
	if int(id) >= len(s.slots) {
		return fmt.Errorf("%w: %d", ErrBadRef, id)
	}
	if !s.slots[id].used {
		return fmt.Errorf("%w: %d", ErrFreed, id)
	}
	s.slots[id] = slot{}
	s.free = append(s.free, id)
	s.live--
	return nil
}

// Len returns the number of live records.
func (s *Store) Len() int { return s.live }

// Slots returns the number of slots ever allocated (live + free).
func (s *Store) Slots() int { return len(s.slots) }

// FreeSlots returns the number of slots waiting for reuse.
func (s *Store) FreeSlots() int { return len(s.free) }

// Each calls fn for every live record in slot order until fn returns false.
func (s *Store) Each(fn func(types.RecordID, *types.Parcel) bool) {
	for i := range s.slots {
		if !s.slots[i].used {
			continue
		}
		if !fn(types.RecordID(i), &s.slots[i].rec) {
			return
		}
	}
}
