package optimize

import (
	"errors"
	"time"

	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/region"
)

// errDeadline is returned internally by cellEngine.search when its
// soft time budget expires; solveCell passes it up and
// scanStorageStaircase wraps it as a SolverFailure.
var errDeadline = errors.New("optimize: cell search exceeded its time budget")

// cellEngine holds the per-cell search state, mirroring the dense
// engine struct / path-and-visited-array discipline of the grounding
// branch-and-bound search: configuration fields up top, then the
// mutable path, then the incumbent.
type cellEngine struct {
	m       *region.Model
	bounds  *subtreeBounds
	sLB     int
	lLB     int

	useDeadline bool
	deadline    time.Time
	steps       int

	path       []int
	modes      []region.Mode
	bestCost   int
	bestFound  bool
	bestPath   []int
	bestModes  []region.Mode
	bestTotals region.Totals
}

// solveCell runs one branch-and-bound search for the cheapest chain
// whose storage >= sLB and lodging >= lLB. feasible is false if no
// such chain exists (the cell is dominated-out / infeasible, not an
// error).
func solveCell(m *region.Model, bounds *subtreeBounds, sLB, lLB int, timeLimit time.Duration) (chain.Chain, bool, error) {
	e := &cellEngine{m: m, bounds: bounds, sLB: sLB, lLB: lLB}
	if timeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(timeLimit)
	}
	e.path = make([]int, 0, m.NumNodes)
	e.modes = make([]region.Mode, 0, m.NumNodes)

	// Root is always present with ModeRoot, contributing nothing.
	e.path = append(e.path, 0)
	e.modes = append(e.modes, region.ModeRoot)

	if err := e.search(1, 0, 0, 0); err != nil {
		return chain.Chain{}, false, err
	}
	if !e.bestFound {
		return chain.Chain{}, false, nil
	}
	return chain.Chain{Indices: e.bestPath, Modes: e.bestModes, Totals: e.bestTotals}, true, nil
}

// deadlineExceeded performs a rare wall-clock check (every 4096 node
// events), matching the grounding engine's cadence.
func (e *cellEngine) deadlineExceeded() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	return time.Now().After(e.deadline)
}

// search decides node i (which requires its parent to already be on
// e.path), trying include-as-storage, include-as-lodging, and exclude
// (skip the whole subtree) in that order, then continues to the next
// undecided index. i == m.NumNodes means every node has a decision;
// search checks feasibility and updates the incumbent.
func (e *cellEngine) search(i, cost, storage, lodging int) error {
	if e.deadlineExceeded() {
		return errDeadline
	}
	if e.bestFound && cost >= e.bestCost {
		return nil // cost is monotone non-decreasing; no better solution down this path
	}
	if i >= e.m.NumNodes {
		if storage >= e.sLB && lodging >= e.lLB {
			e.recordIncumbent(cost, storage, lodging)
		}
		return nil
	}
	remainingStorage := e.sLB - storage
	remainingLodging := e.lLB - lodging
	if remainingStorage > e.bounds.suffixStorage[i] || remainingLodging > e.bounds.suffixLodging[i] {
		return nil // even taking everything left cannot close the deficit
	}

	if !e.parentIncluded(i) {
		// Parent was excluded: this whole subtree is unreachable, skip to its jump.
		return e.search(e.m.Jump[i], cost, storage, lodging)
	}

	// Branch 1: include as storage.
	e.path = append(e.path, i)
	e.modes = append(e.modes, region.ModeStorage)
	if err := e.search(i+1, cost+e.m.Costs[i], storage+e.m.StorageValues[i], lodging); err != nil {
		return err
	}
	e.path = e.path[:len(e.path)-1]
	e.modes = e.modes[:len(e.modes)-1]

	// Branch 2: include as lodging.
	e.path = append(e.path, i)
	e.modes = append(e.modes, region.ModeLodging)
	if err := e.search(i+1, cost+e.m.Costs[i], storage, lodging+e.m.LodgingValues[i]); err != nil {
		return err
	}
	e.path = e.path[:len(e.path)-1]
	e.modes = e.modes[:len(e.modes)-1]

	// Branch 3: exclude the whole subtree.
	return e.search(e.m.Jump[i], cost, storage, lodging)
}

// parentIncluded reports whether i's parent is present on the current
// path, by a linear scan over the whole path; correctness does not
// depend on this being fast.
func (e *cellEngine) parentIncluded(i int) bool {
	parent := e.m.Parents[i]
	for _, p := range e.path {
		if p == parent {
			return true
		}
	}
	return false
}

func (e *cellEngine) recordIncumbent(cost, storage, lodging int) {
	e.bestFound = true
	e.bestCost = cost
	e.bestPath = append([]int(nil), e.path...)
	e.bestModes = append([]region.Mode(nil), e.modes...)
	e.bestTotals = region.Totals{Cost: cost, Storage: storage, Lodging: lodging}
}
