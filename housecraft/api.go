// Package housecraft is the public façade consumed by the CLI and any
// other collaborator: BuildRegion constructs a region.Model, while
// EnumerateDominant and OptimizeDominant produce the Pareto-dominant
// chain set via the exhaustive walker or the MIP-style optimizer
// respectively. The dispatch shape — validate once, then branch to
// the chosen algorithm — is grounded on the teacher's TSP solver
// dispatcher (tsp/solve.go in the retrieved corpus).
package housecraft

import (
	"context"

	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/dominance"
	"github.com/brynhall/housecraft/optimize"
	"github.com/brynhall/housecraft/parallel"
	"github.com/brynhall/housecraft/partition"
	"github.com/brynhall/housecraft/region"
)

// State mirrors region.Mode for the external Chain form: 0 = root,
// 1 = storage, 2 = lodging.
type State = region.Mode

// Chain is the external form of spec.md §6: original building keys
// (index 0 is the root) paired with their states, plus the triple the
// dominance frontier is sorted and filtered on.
type Chain struct {
	Lodging int
	Storage int
	Cost    int
	Indices []string
	States  []State
}

// BuildRegion constructs a region.Model from an unordered building map
// and a root key.
func BuildRegion(buildings map[string]region.Building, root string) (*region.Model, error) {
	return region.Build(buildings, root)
}

// EnumerateDominant runs the exhaustive pop-jump-push walk across
// workers parallel jobs and returns the Pareto-dominant chain set.
func EnumerateDominant(ctx context.Context, m *region.Model, workers int) ([]Chain, error) {
	jobs := partition.Split(m, workers)
	merged, err := parallel.Run(ctx, m, jobs)
	if err != nil {
		return nil, err
	}
	return toExternal(m, dominance.Filter(merged.Entries())), nil
}

// OptimizeDominant runs the MIP-style branch-and-bound optimizer (one
// best chain per (storage-lb, lodging-lb) cell) and returns the
// Pareto-dominant chain set after filtering.
func OptimizeDominant(ctx context.Context, m *region.Model, opts optimize.Options) ([]Chain, error) {
	solved, err := optimize.Run(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	return toExternal(m, dominance.Filter(solved)), nil
}

// toExternal translates internal index-based chains into the external
// key/state form. m.Keys[0] is the root key passed to region.Build, so
// a chain that retains index 0 reports the caller's own root string at
// Indices[0], per spec.md §8 S1 ("indices:[A]").
func toExternal(m *region.Model, chains []chain.Chain) []Chain {
	out := make([]Chain, 0, len(chains))
	for _, c := range chains {
		keys := make([]string, len(c.Indices))
		for i, idx := range c.Indices {
			keys[i] = m.Keys[idx]
		}
		states := make([]State, len(c.Modes))
		copy(states, c.Modes)
		out = append(out, Chain{
			Lodging: c.Totals.Lodging,
			Storage: c.Totals.Storage,
			Cost:    c.Totals.Cost,
			Indices: keys,
			States:  states,
		})
	}
	return out
}
