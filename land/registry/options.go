package registry

import (
	"log/slog"

	"github.com/joshuapare/landkit/land/index"
)

// Options configures a Registry.
type Options struct {
	// IndexKind selects the ordered index implementation for both indexes.
	// Default: index.KindSlice
	IndexKind index.Kind

	// CapacityHint preallocates room for this many parcels.
	// Default: 0 (implementation default)
	CapacityHint int

	// Logger receives Debug records for every mutation.
	// Default: nil (use internal/logger.L, looked up on every record so a
	// later logger.Init takes effect)
	Logger *slog.Logger
}

// DefaultOptions returns the recommended options for general-purpose use.
func DefaultOptions() *Options {
	return &Options{
		IndexKind:    index.KindSlice,
		CapacityHint: 0,
	}
}
