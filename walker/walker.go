// Package walker implements the pop-jump-push multistate traversal:
// it visits every connected subtree of a region.Model exactly once per
// mode assignment reachable from the initial modes. A node that starts
// in lodging mode is visited in both lodging and storage mode; a node
// that starts in storage mode is visited in storage mode only.
//
// The control-flow shape — a dense struct holding the current path, a
// depth-first expand/retract loop, and a resume index that either
// advances past a closed subtree or descends into a fresh one — mirrors
// a branch-and-bound search engine with the bound disabled: every node
// of the search tree is visited rather than pruned.
package walker

import "github.com/brynhall/housecraft/region"

// Observer receives the walker's current state (index stack, mode
// stack, totals) at every visit point, before Walker.Step advances to
// the next state. Implementations must
// not retain the slices inside the passed-in state beyond the call;
// callers who need to keep a visited chain must copy it (chain.Chain.Snapshot).
type Observer interface {
	Visit(indices []int, modes []region.Mode, totals region.Totals)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(indices []int, modes []region.Mode, totals region.Totals)

// Visit implements Observer.
func (f ObserverFunc) Visit(indices []int, modes []region.Mode, totals region.Totals) {
	f(indices, modes, totals)
}

// Walker advances one Chain through the full state space of a region.Model.
// A Walker owns its Chain exclusively; it is not safe for concurrent use.
type Walker struct {
	model   *region.Model
	indices []int
	modes   []region.Mode
	totals  region.Totals
}

// New returns a Walker starting from the given initial state (indices,
// modes, totals). Use NewFull for the canonical full-tree start, or
// pass a partial state produced by a WorkPartitioner job descriptor.
func New(m *region.Model, indices []int, modes []region.Mode, totals region.Totals) *Walker {
	return &Walker{model: m, indices: indices, modes: modes, totals: totals}
}

// NewFull returns a Walker starting at the full-tree state: every node
// selected in its initial mode, as spec.md mandates for a from-scratch
// enumeration.
func NewFull(m *region.Model) *Walker {
	idx := make([]int, m.NumNodes)
	modes := make([]region.Mode, m.NumNodes)
	for i := 0; i < m.NumNodes; i++ {
		idx[i] = i
		modes[i] = m.InitialModes[i]
	}
	return New(m, idx, modes, m.InitialTotals)
}

// Done reports whether the walk has completed (root has been popped).
func (w *Walker) Done() bool { return len(w.indices) == 0 }

// State returns the current chain state without copying; callers must
// treat the returned slices as read-only and not retain them past the
// next call to Step.
func (w *Walker) State() (indices []int, modes []region.Mode, totals region.Totals) {
	return w.indices, w.modes, w.totals
}

// Run drives the walker to completion, calling obs.Visit once per
// state before every transition, starting from the walker's current
// state. It stops once Done() is true.
func Run(w *Walker, obs Observer) {
	for !w.Done() {
		obs.Visit(w.indices, w.modes, w.totals)
		w.Step()
	}
}

// Step advances the walker by exactly one pop-jump-push transition, as
// described in spec.md §4.2:
//
//   - top mode == ModeLodging: flip it to ModeStorage in place (Case A),
//     resume extension from the flipped node's own index + 1.
//   - top mode == ModeRoot or ModeStorage: pop the node entirely (Case B),
//     resume extension from Jump[popped index] (skip its whole subtree).
//
// After resolving the resume index, Step greedily extends the chain:
// push every index from resume up to NumNodes in its initial mode,
// accumulating cost and the value for that mode.
//
// Step must not be called once Done() is true.
func (w *Walker) Step() {
	n := len(w.indices)
	lastIdx := w.indices[n-1]
	lastMode := w.modes[n-1]

	var resume int
	switch lastMode {
	case region.ModeLodging:
		// Case A: flip lodging -> storage without changing selection.
		w.modes[n-1] = region.ModeStorage
		w.totals.Storage += w.model.StorageValues[lastIdx]
		w.totals.Lodging -= w.model.LodgingValues[lastIdx]
		resume = lastIdx + 1
	default:
		// Case B: pop the node entirely. Lodging contribution (if any)
		// was already removed during the Case-A transition that must
		// have preceded this pop, so only cost and storage are backed
		// out here.
		w.indices = w.indices[:n-1]
		w.modes = w.modes[:n-1]
		w.totals.Cost -= w.model.Costs[lastIdx]
		if lastMode == region.ModeStorage {
			w.totals.Storage -= w.model.StorageValues[lastIdx]
		}
		resume = w.model.Jump[lastIdx]
	}

	w.extend(resume)
}

// extend greedily pushes every index in [from, NumNodes) in its
// initial mode, accumulating aggregates as it goes.
func (w *Walker) extend(from int) {
	for r := from; r < w.model.NumNodes; r++ {
		w.indices = append(w.indices, r)
		mode := w.model.InitialModes[r]
		w.modes = append(w.modes, mode)
		w.totals.Cost += w.model.Costs[r]
		switch mode {
		case region.ModeStorage:
			w.totals.Storage += w.model.StorageValues[r]
		case region.ModeLodging:
			w.totals.Lodging += w.model.LodgingValues[r]
		}
	}
}
