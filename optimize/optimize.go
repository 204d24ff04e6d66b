// Package optimize implements the MIP-based alternative to exhaustive
// enumeration: for every (storage lower bound, lodging lower bound)
// cell, it finds the single cheapest chain meeting both bounds.
//
// No integer-program solver library appears anywhere in the retrieved
// corpus (see DESIGN.md), so the 0/1 IP of spec.md §4.7 is solved with
// a dedicated branch-and-bound search instead of an external solver.
// The search engine's shape — a dense struct holding the current path,
// an admissible bound checked before every branch, and a soft
// deadline checked every few thousand node events — is grounded on the
// teacher's TSP branch-and-bound engine (tsp/bb.go in the retrieved
// corpus): same discipline, applied to subtree selection instead of
// Hamiltonian-cycle construction.
package optimize

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/hcerrors"
	"github.com/brynhall/housecraft/region"
)

// Options configures the optimizer.
type Options struct {
	// Workers bounds parallelism across lodging-LB values. 0 means 1.
	Workers int
	// TimeLimit, if positive, aborts any single cell's search once
	// exceeded, surfacing hcerrors.ErrSolverFailure for that cell.
	TimeLimit time.Duration
}

// Run solves every (s_lb, l_lb) cell for region m, skipping dominated
// lower-bound points as each cell is solved (spec.md §4.7's staircase
// scan), and returns every feasible cell's winning chain. Callers
// should pass the result through dominance.Filter.
func Run(ctx context.Context, m *region.Model, opts Options) ([]chain.Chain, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	bounds := newSubtreeBounds(m)

	var (
		mu      sync.Mutex
		results []chain.Chain
		firstErr error
	)

	lLBs := make(chan int, m.MaxLodging+1)
	for l := 0; l <= m.MaxLodging; l++ {
		lLBs <- l
	}
	close(lLBs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for lLB := range lLBs {
				if ctx.Err() != nil {
					return
				}
				cellResults, err := scanStorageStaircase(ctx, m, bounds, lLB, opts.TimeLimit)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				results = append(results, cellResults...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// scanStorageStaircase walks s_lb from 0 upward for a fixed l_lb,
// jumping past dominated points after each solve, stopping at the
// first infeasible cell.
func scanStorageStaircase(ctx context.Context, m *region.Model, bounds *subtreeBounds, lLB int, timeLimit time.Duration) ([]chain.Chain, error) {
	var out []chain.Chain
	sLB := 0
	for sLB <= m.MaxStorage {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		sol, feasible, err := solveCell(m, bounds, sLB, lLB, timeLimit)
		if err != nil {
			return out, hcerrors.Wrap(hcerrors.ErrSolverFailure, "", err.Error())
		}
		if !feasible {
			break
		}
		out = append(out, sol)
		sLB = sol.Totals.Storage + 1
	}
	return out, nil
}

// subtreeBounds precomputes, for every index i, the maximum storage
// and lodging achievable from the remainder of the pre-order sequence
// starting at i: suffixStorage[i] = Σ StorageValues[i..N), and
// likewise for lodging. These are admissible (if loose) upper bounds
// on what any still-undecided suffix of the search could contribute,
// since no node can contribute more than its own value regardless of
// which subtree it falls in.
type subtreeBounds struct {
	suffixStorage []int
	suffixLodging []int
}

func newSubtreeBounds(m *region.Model) *subtreeBounds {
	b := &subtreeBounds{
		suffixStorage: make([]int, m.NumNodes+1),
		suffixLodging: make([]int, m.NumNodes+1),
	}
	for i := m.NumNodes - 1; i >= 0; i-- {
		b.suffixStorage[i] = b.suffixStorage[i+1] + m.StorageValues[i]
		b.suffixLodging[i] = b.suffixLodging[i+1] + m.LodgingValues[i]
	}
	return b
}
