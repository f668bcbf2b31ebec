// Package verify checks the structural invariants of a dual-indexed registry.
//
// # Overview
//
// A registry keeps one arena of parcel records and two ordered indexes over
// it. This package validates that the three agree. It is used by tests after
// every mutation and by `landctl --verify`.
//
// Validation categories:
//   - LocationIndex: strictly ascending (city, address); each entry's key
//     matches the record it points to
//   - RegionIndex: strictly ascending (region, id); same key/record check
//   - CrossIndex: both indexes reference the identical set of records, and
//     that set has Len() members
//   - Sequences: ownership stamps are unique and below the next stamp
//
// # Quick Start
//
//	if err := verify.All(reg); err != nil {
//	    fmt.Printf("Validation failed: %v\n", err)
//	}
//
// # ValidationError
//
// All validation functions return *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string         // Check that failed (e.g., "CrossIndex")
//	    Message string         // Human-readable description
//	    Details map[string]any // Additional context
//	}
package verify
