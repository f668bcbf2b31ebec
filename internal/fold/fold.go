// Package fold holds the two owner-name comparisons used by the registry.
//
// Equal decides whether an ownership change is a no-op. EqualASCII decides
// which parcels belong to an owner when counting or listing.
package fold

// Equal reports whether a and b are byte-for-byte identical.
func Equal(a, b string) bool {
	return a == b
}

// EqualASCII reports whether a and b are equal under ASCII case folding.
// Bytes outside 'A'..'Z' are compared verbatim, so non-ASCII text only
// matches itself.
func EqualASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if lower(ca) != lower(cb) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
