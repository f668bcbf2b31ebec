package main

import (
	"fmt"

	"github.com/joshuapare/landkit/internal/logger"
	"github.com/joshuapare/landkit/internal/script"
	"github.com/joshuapare/landkit/land/registry"
	"github.com/joshuapare/landkit/land/verify"
	"github.com/joshuapare/landkit/pkg/types"
)

// parcelView is the JSON shape of one listed parcel.
type parcelView struct {
	City     string `json:"city"`
	Address  string `json:"address"`
	Region   string `json:"region"`
	ID       uint64 `json:"id"`
	Owner    string `json:"owner"`
	Sequence uint64 `json:"sequence"`
}

// result is the outcome of one script command.
type result struct {
	Line    int             `json:"line"`
	Command string          `json:"command"`
	OK      bool            `json:"ok"`
	Error   string          `json:"error,omitempty"`
	Kind    string          `json:"kind,omitempty"`
	Owner   *string         `json:"owner,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Parcels []parcelView    `json:"parcels,omitempty"`
	Stats   *registry.Stats `json:"stats,omitempty"`
}

// runner applies parsed commands to one registry.
type runner struct {
	reg       *registry.Registry
	keepGoing bool
	check     bool

	results []result
	failed  int
}

func newRunner(reg *registry.Registry) *runner {
	return &runner{reg: reg, keepGoing: keepGoing, check: verifyOps}
}

// run executes cmds in order. A failed command stops the run unless
// keepGoing is set; an invariant violation always stops it.
func (r *runner) run(cmds []script.Command) error {
	for _, c := range cmds {
		res := r.exec(c)
		r.results = append(r.results, res)
		if !jsonOut {
			printResult(res)
		}

		if res.OK && r.check && c.Op.Mutates() {
			if err := verify.All(r.reg); err != nil {
				logger.Error("registry inconsistent", "line", c.Line, "command", res.Command, "error", err)
				return fmt.Errorf("line %d: %s: registry inconsistent: %w", c.Line, res.Command, err)
			}
		}
		if !res.OK {
			logger.Debug("command failed", "line", c.Line, "command", res.Command, "kind", res.Kind)
			r.failed++
			if !r.keepGoing {
				return fmt.Errorf("line %d: %s: %s", c.Line, res.Command, res.Error)
			}
		}
	}
	if r.failed > 0 {
		return fmt.Errorf("%d of %d command(s) failed", r.failed, len(cmds))
	}
	return nil
}

func (r *runner) exec(c script.Command) result {
	res := result{Line: c.Line, Command: c.String()}

	var err error
	switch c.Op {
	case script.OpAdd:
		err = r.reg.Add(c.City, c.Address, c.Region, c.ID)
	case script.OpDeleteByLocation:
		err = r.reg.DeleteByLocation(c.City, c.Address)
	case script.OpDeleteByRegion:
		err = r.reg.DeleteByRegion(c.Region, c.ID)
	case script.OpOwnerByLocation:
		var owner string
		if owner, err = r.reg.OwnerByLocation(c.City, c.Address); err == nil {
			res.Owner = &owner
		}
	case script.OpOwnerByRegion:
		var owner string
		if owner, err = r.reg.OwnerByRegion(c.Region, c.ID); err == nil {
			res.Owner = &owner
		}
	case script.OpChangeOwnerByLocation:
		err = r.reg.ChangeOwnerByLocation(c.City, c.Address, c.Owner)
	case script.OpChangeOwnerByRegion:
		err = r.reg.ChangeOwnerByRegion(c.Region, c.ID, c.Owner)
	case script.OpCount:
		n := r.reg.CountByOwner(c.Owner)
		res.Count = &n
	case script.OpList:
		res.Parcels = collect(r.reg.ListByLocation())
	case script.OpListOwner:
		res.Parcels = collect(r.reg.ListByOwner(c.Owner))
	case script.OpStats:
		s := r.reg.Stats()
		res.Stats = &s
	default:
		err = fmt.Errorf("unsupported command %v", c.Op)
	}

	if err != nil {
		res.Error = err.Error()
		res.Kind = types.KindOf(err).String()
		return res
	}
	res.OK = true
	return res
}

func collect(it *registry.Iterator) []parcelView {
	out := make([]parcelView, 0, it.Len())
	for p := range it.All() {
		out = append(out, parcelView{
			City:     p.City,
			Address:  p.Address,
			Region:   p.Region,
			ID:       p.ID,
			Owner:    p.Owner,
			Sequence: p.Sequence,
		})
	}
	return out
}

// printResult writes the text rendering of res.
func printResult(res result) {
	if !res.OK {
		printInfo("%4d  FAIL  %s: %s\n", res.Line, res.Command, res.Error)
		return
	}

	switch {
	case res.Owner != nil:
		printInfo("%4d  ok    %s -> %q\n", res.Line, res.Command, *res.Owner)
	case res.Count != nil:
		printInfo("%4d  ok    %s -> %d\n", res.Line, res.Command, *res.Count)
	case res.Stats != nil:
		s := res.Stats
		printInfo("%4d  ok    %s\n", res.Line, res.Command)
		printInfo("        Parcels: %d\n", s.Parcels)
		printInfo("        Next sequence: %d\n", s.NextSequence)
		printInfo("        Slots: %d (%d free)\n", s.Slots, s.FreeSlots)
		printInfo("        Index: %s (location %d entries, region %d entries, ~%d bytes)\n",
			s.IndexKind, s.Location.Entries, s.Region.Entries,
			s.Location.BytesApprox+s.Region.BytesApprox)
	case res.Parcels != nil:
		printInfo("%4d  ok    %s -> %d parcel(s)\n", res.Line, res.Command, len(res.Parcels))
		for _, p := range res.Parcels {
			owner := p.Owner
			if owner == "" {
				owner = "-"
			}
			printInfo("        %s, %s [%s #%d] owner=%s\n", p.City, p.Address, p.Region, p.ID, owner)
		}
	default:
		printVerbose("%4d  ok    %s\n", res.Line, res.Command)
	}
}
