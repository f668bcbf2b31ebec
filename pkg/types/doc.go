// Package types defines the core value types shared by the landkit packages:
// parcel records, the two composite lookup keys, and typed errors.
//
// Design goals:
//   - Small, copyable values (Parcel, LocationKey, RegionKey) instead of
//     pointer graphs shared between indexes.
//   - Stable handles (RecordID) for records owned by the arena.
//   - Typed errors with stable categories (invalid/not-found/conflict/unchanged).
//
// This package has no dependencies beyond the standard library.
package types
