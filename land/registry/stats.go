package registry

import "github.com/joshuapare/landkit/land/index"

// Stats reports registry metrics.
type Stats struct {
	Parcels      int         // Number of registered parcels
	NextSequence uint64      // Stamp the next Add/transfer will use
	Slots        int         // Arena slots ever allocated
	FreeSlots    int         // Arena slots waiting for reuse
	IndexKind    string      // "slice" or "btree"
	Location     index.Stats // Location index metrics
	Region       index.Stats // Region index metrics
}

// Stats returns a snapshot of registry metrics.
func (r *Registry) Stats() Stats {
	return Stats{
		Parcels:      r.Len(),
		NextSequence: r.nextSeq,
		Slots:        r.records.Slots(),
		FreeSlots:    r.records.FreeSlots(),
		IndexKind:    r.kind.String(),
		Location:     r.byLocation.Stats(),
		Region:       r.byRegion.Stats(),
	}
}
