package registry

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/landkit/internal/logger"
	"github.com/joshuapare/landkit/internal/testutil"
	"github.com/joshuapare/landkit/land/index"
	"github.com/joshuapare/landkit/pkg/types"
)

func TestAdd_EmptyKeyRejected(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		cases := []struct{ city, addr, region string }{
			{"", "X", "R"},
			{"C", "", "R"},
			{"C", "X", ""},
		}
		for _, c := range cases {
			err := r.Add(c.city, c.addr, c.region, 1)
			require.ErrorIs(t, err, types.ErrEmptyKey)
			require.Equal(t, types.ErrKindInvalid, types.KindOf(err))
		}
		require.Equal(t, 0, r.Len())
		require.Equal(t, uint64(0), r.NextSequence(), "failed adds must not consume stamps")
	})
}

func TestAdd_ConflictLeavesRegistryUnchanged(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		require.NoError(t, r.Add("Prague", "Technicka", "Dejvice", 9873))
		before := r.Parcels()
		seq := r.NextSequence()

		// Location collides, region is free.
		err := r.Add("Prague", "Technicka", "Hradcany", 7344)
		require.ErrorIs(t, err, types.ErrConflict)

		// Region collides, location is free.
		err = r.Add("Brno", "Bozetechova", "Dejvice", 9873)
		require.ErrorIs(t, err, types.ErrConflict)

		require.Equal(t, before, r.Parcels())
		require.Equal(t, seq, r.NextSequence())
		_, err = r.OwnerByRegion("Hradcany", 7344)
		require.ErrorIs(t, err, types.ErrNotFound, "no partial insert into the region index")
		_, err = r.OwnerByLocation("Brno", "Bozetechova")
		require.ErrorIs(t, err, types.ErrNotFound, "no partial insert into the location index")
	})
}

func TestAdd_SameIDInDifferentRegions(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))
		require.NoError(t, r.Add("Prague", "Evropska", "Vokovice", 12345))
		require.NoError(t, r.Add("Praha", "Thakurova", "Dejvice", 12346))
		require.Equal(t, 3, r.Len())
	})
}

func TestRoundTrip(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))

		owner, err := r.OwnerByLocation("Prague", "Thakurova")
		require.NoError(t, err)
		require.Equal(t, "", owner)

		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Thakurova", "X"))
		owner, err = r.OwnerByRegion("Dejvice", 12345)
		require.NoError(t, err)
		require.Equal(t, "X", owner)
	})
}

func TestDelete_EmptyKeyAndMiss(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		testutil.Seed(t, r, testutil.ReferenceParcels)

		require.ErrorIs(t, r.DeleteByLocation("C", ""), types.ErrEmptyKey)
		require.ErrorIs(t, r.DeleteByLocation("", "Evropska"), types.ErrEmptyKey)
		require.ErrorIs(t, r.DeleteByRegion("", 4552), types.ErrEmptyKey)
		require.ErrorIs(t, r.DeleteByLocation("Brno", "Technicka"), types.ErrNotFound)
		require.ErrorIs(t, r.DeleteByRegion("Karlin", 9873), types.ErrNotFound)
		require.Equal(t, len(testutil.ReferenceParcels), r.Len())
	})
}

func TestDelete_RemovesFromBothIndexes(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		testutil.Seed(t, r, testutil.ReferenceParcels)

		require.NoError(t, r.DeleteByRegion("Dejvice", 9873))
		_, err := r.OwnerByLocation("Prague", "Technicka")
		require.ErrorIs(t, err, types.ErrNotFound)

		require.NoError(t, r.DeleteByLocation("Prague", "Thakurova"))
		_, err = r.OwnerByRegion("Dejvice", 12345)
		require.ErrorIs(t, err, types.ErrNotFound)

		require.Equal(t, 3, r.Len())
		require.Equal(t, 3, r.LocationIndex().Len())
		require.Equal(t, 3, r.RegionIndex().Len())
	})
}

func TestDeleteThenReadd_GetsFreshSequence(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		testutil.Seed(t, r, testutil.ReferenceParcels)
		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Evropska", "CVUT"))

		highest := r.NextSequence() - 1
		require.NoError(t, r.DeleteByLocation("Liberec", "Evropska"))
		require.NoError(t, r.Add("Liberec", "Evropska", "Librec", 4552))

		it := r.ListByOwner("")
		var last types.Parcel
		for p := range it.All() {
			last = p
		}
		require.Equal(t, "Liberec", last.City, "re-added parcel is the newest unowned one")
		require.Greater(t, last.Sequence, highest)
	})
}

func TestGetOwner_EmptyKey(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		testutil.Seed(t, r, testutil.ReferenceParcels)

		_, err := r.OwnerByRegion("", 1)
		require.ErrorIs(t, err, types.ErrEmptyKey)
		_, err = r.OwnerByLocation("Prague", "")
		require.ErrorIs(t, err, types.ErrEmptyKey)
		require.ErrorIs(t, r.ChangeOwnerByLocation("", "Evropska", "X"), types.ErrEmptyKey)
		require.ErrorIs(t, r.ChangeOwnerByRegion("", 4552, "X"), types.ErrEmptyKey)
	})
}

func TestChangeOwner_ExactCaseNoOp(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))

		// "" -> "" is a no-op on a fresh parcel.
		err := r.ChangeOwnerByLocation("Prague", "Thakurova", "")
		require.ErrorIs(t, err, types.ErrUnchanged)
		require.Equal(t, types.ErrKindUnchanged, types.KindOf(err))

		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Thakurova", "CVUT"))
		seq := r.NextSequence()

		require.ErrorIs(t, r.ChangeOwnerByRegion("Dejvice", 12345, "CVUT"), types.ErrUnchanged)
		require.Equal(t, seq, r.NextSequence(), "no-op change must not consume a stamp")

		// A case-only change is a real transfer, yet both spellings still
		// count as the same owner.
		require.NoError(t, r.ChangeOwnerByRegion("Dejvice", 12345, "cvut"))
		require.Equal(t, seq+1, r.NextSequence())
		require.Equal(t, 1, r.CountByOwner("CVUT"))
		require.Equal(t, 1, r.CountByOwner("cvut"))

		// Back to unowned.
		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Thakurova", ""))
		require.Equal(t, 1, r.CountByOwner(""))
	})
}

func TestCaseInsensitiveCounting(t *testing.T) {
	forEachKind(t, func(t *testing.T, r *Registry) {
		testutil.Seed(t, r, testutil.ReferenceParcels[:3])
		require.NoError(t, r.ChangeOwnerByRegion("Dejvice", 9873, "Cvut"))
		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Thakurova", "cvut"))
		require.NoError(t, r.ChangeOwnerByLocation("Prague", "Evropska", "CVUT"))

		require.Equal(t, 3, r.CountByOwner("cVuT"))
		requireView(t, r.ListByOwner("cVuT"), []row{
			{"Prague", "Technicka", "Dejvice", 9873, "Cvut"},
			{"Prague", "Thakurova", "Dejvice", 12345, "cvut"},
			{"Prague", "Evropska", "Vokovice", 12345, "CVUT"},
		})
		require.Equal(t, 0, r.CountByOwner("cvu"))
	})
}

func TestStats(t *testing.T) {
	r := New(&Options{IndexKind: index.KindBTree, CapacityHint: 8})
	testutil.Seed(t, r, testutil.ReferenceParcels)
	require.NoError(t, r.DeleteByLocation("Plzen", "Evropska"))

	stats := r.Stats()
	require.Equal(t, 4, stats.Parcels)
	require.Equal(t, uint64(5), stats.NextSequence)
	require.Equal(t, 5, stats.Slots)
	require.Equal(t, 1, stats.FreeSlots)
	require.Equal(t, "btree", stats.IndexKind)
	require.Equal(t, "BTreeIndex", stats.Location.Impl)
	require.Equal(t, 4, stats.Region.Entries)

	// The freed slot is reused by the next insert.
	require.NoError(t, r.Add("Plzen", "Evropska", "Plzen mesto", 78901))
	require.Equal(t, 0, r.Stats().FreeSlots)
	require.Equal(t, 5, r.Stats().Slots)
}

func TestDump(t *testing.T) {
	r := New(nil)
	testutil.Seed(t, r, testutil.ReferenceParcels[3:])
	require.NoError(t, r.ChangeOwnerByLocation("Plzen", "Evropska", "Anton Hrabis"))

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Liberec, Evropska [Librec #4552] owner=-"))
	require.Contains(t, lines[1], "owner=Anton Hrabis")
}

func TestLoggerReceivesMutations(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(&Options{Logger: log})

	require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))
	require.NoError(t, r.ChangeOwnerByLocation("Prague", "Thakurova", "CVUT"))
	require.NoError(t, r.DeleteByRegion("Dejvice", 12345))

	out := buf.String()
	require.Contains(t, out, "parcel added")
	require.Contains(t, out, "owner changed")
	require.Contains(t, out, "parcel deleted")
	require.Contains(t, out, "to=CVUT")
}

func TestPackageLoggerInitAfterNew(t *testing.T) {
	t.Cleanup(func() { _ = logger.Init(logger.Options{}) })

	r := New(nil)
	require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))

	var buf bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}))
	require.NoError(t, r.ChangeOwnerByRegion("Dejvice", 12345, "CVUT"))

	require.Contains(t, buf.String(), "owner changed")
	require.NotContains(t, buf.String(), "parcel added")
}

func TestRecord(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Add("Prague", "Thakurova", "Dejvice", 12345))

	rid, ok := r.LocationIndex().Get(types.LocationKey{City: "Prague", Address: "Thakurova"})
	require.True(t, ok)
	p, err := r.Record(rid)
	require.NoError(t, err)
	require.Equal(t, uint64(12345), p.ID)

	_, err = r.Record(rid + 10)
	require.Error(t, err)
}
