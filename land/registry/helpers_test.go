package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/landkit/land/index"
	"github.com/joshuapare/landkit/land/verify"
)

// row is the expected content of one iterator position.
type row struct {
	city, addr, region string
	id                 uint64
	owner              string
}

// requireView walks it to the end and compares every position with want.
func requireView(t *testing.T, it *Iterator, want []row) {
	t.Helper()
	for i, w := range want {
		require.False(t, it.AtEnd(), "view ended early at position %d", i)
		got := row{it.City(), it.Address(), it.Region(), it.ID(), it.Owner()}
		require.Equal(t, w, got, "position %d", i)
		it.Next()
	}
	require.True(t, it.AtEnd(), "view has more than %d parcels", len(want))
}

// forEachKind runs fn against a fresh registry for every index implementation.
func forEachKind(t *testing.T, fn func(t *testing.T, r *Registry)) {
	t.Helper()
	for _, kind := range []index.Kind{index.KindSlice, index.KindBTree} {
		t.Run(kind.String(), func(t *testing.T) {
			r := New(&Options{IndexKind: kind})
			fn(t, r)
			require.NoError(t, verify.All(r))
		})
	}
}
