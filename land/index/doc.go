// Package index provides ordered in-memory indexes mapping composite parcel
// keys to arena record IDs.
//
// # Overview
//
// The registry keeps two indexes over the same set of records: one ordered by
// (city, address) and one ordered by (region, identifier). Both are instances
// of the generic Index interface, parameterised by key type and a comparison
// function, so the registry code is identical for either ordering.
//
// # Index Implementations
//
// SliceIndex: sorted slice + binary search (RECOMMENDED DEFAULT)
//   - Lookup: O(log n) binary search (sort.Search)
//   - Insert/Remove: O(log n) search + O(n) tail shift
//   - Ascend: contiguous slice walk, cache friendly
//
// BTreeIndex: github.com/google/btree generic B-tree
//   - Lookup/Insert/Remove: O(log n), no shifting
//   - Ascend: in-order tree walk
//   - Best for: very large registries with heavy insert/delete churn
//
// # Interfaces
//
// ReadOnlyIndex: query-only interface
//   - Get(key): find the record registered under key
//   - Ascend(fn): visit entries in ascending key order
//   - Len(), Stats()
//
// Index: full mutable interface (embeds ReadOnlyIndex)
//   - Insert(key, id): add at sorted position; rejects duplicates
//   - Remove(key): drop the entry, returning its record ID
//
// # Usage Example
//
//	byLocation := index.New(index.KindSlice, types.CompareLocation, 0)
//	if !byLocation.Insert(types.LocationKey{City: "Prague", Address: "Thakurova"}, id) {
//	    return errors.New("duplicate location")
//	}
//	byLocation.Ascend(func(k types.LocationKey, id types.RecordID) bool {
//	    fmt.Println(k, id)
//	    return true
//	})
//
// # Uniqueness
//
// Keys are unique under the comparison function. Insert never overwrites: a
// caller that needs all-or-nothing semantics across several indexes checks
// Get on each index first, then inserts.
//
// # Thread Safety
//
// Indexes are NOT thread-safe. The registry has a single writer and
// does not lock.
package index
