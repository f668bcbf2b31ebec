// Package registry implements an in-memory land registry with two
// synchronized indexes over the same parcel records.
//
// # Keys
//
// Every parcel is reachable through two independent composite keys:
//   - location: (city, address), unique across the registry
//   - region:   (region, identifier), unique across the registry
//
// Records live in a single arena (land/store). The location index and the
// region index both map their key to the record's arena ID, so a record can
// never be reachable through one index but not the other after a successful
// call.
//
// # Operations
//
//	r := registry.New(nil)
//	if err := r.Add("Prague", "Thakurova", "Dejvice", 12345); err != nil {
//	    return err
//	}
//	if err := r.ChangeOwnerByRegion("Dejvice", 12345, "CVUT"); err != nil {
//	    return err
//	}
//	owner, _ := r.OwnerByLocation("Prague", "Thakurova") // "CVUT"
//
// Every operation either succeeds and returns a nil error, or fails with a
// typed error from pkg/types and leaves the registry unchanged:
//
//	errors.Is(err, types.ErrEmptyKey)  // a key field is empty
//	errors.Is(err, types.ErrNotFound)  // no parcel under that key
//	errors.Is(err, types.ErrConflict)  // Add: key already registered
//	errors.Is(err, types.ErrUnchanged) // ChangeOwner*: same owner, exact case
//
// # Ownership sequence
//
// Each registry owns a counter. Add and every successful ownership change
// stamp the parcel with the next value. ListByOwner orders by that stamp, so
// the parcel whose current ownership is oldest comes first. Values are never
// reused, not even after a delete.
//
// # Owner matching
//
// ChangeOwner* treats the change as a no-op only when the new owner is
// byte-for-byte identical to the stored one. CountByOwner and ListByOwner
// match owners under ASCII case folding. Changing "CVUT" to "cvut" is
// therefore a real transfer, after which both spellings still count as the
// same owner.
//
// # Iteration
//
// ListByLocation and ListByOwner return an Iterator over copies of the
// parcels taken when the view is built. Later mutations never show up in an
// existing view.
//
// # Thread Safety
//
// A Registry is NOT thread-safe. It is designed for one sequential caller.
package registry
