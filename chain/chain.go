// Package chain defines the mutable walker state: a connected subtree
// of a region.Model, in pre-order, with a mode assigned to every
// selected non-root node, and the aggregates implied by that
// selection.
package chain

import "github.com/brynhall/housecraft/region"

// Chain is one point in the walker's state space: a connected subtree
// rooted at the region root (index 0 always present), each non-root
// index paired with a mode in region.ModeStorage/region.ModeLodging, and
// the cost/storage/lodging aggregates those selections imply.
//
// Invariant: len(Indices) == len(Modes); Indices[0] == 0 with
// Modes[0] == region.ModeRoot; for i > 0, region.Model.Parents[Indices[i]]
// equals some Indices[j] with j < i.
type Chain struct {
	Indices []int
	Modes   []region.Mode
	Totals  region.Totals
}

// New returns the walker's start state for m: every node selected in
// its initial mode, aggregates equal to m.InitialTotals.
func New(m *region.Model) *Chain {
	c := &Chain{
		Indices: make([]int, 0, m.NumNodes),
		Modes:   make([]region.Mode, 0, m.NumNodes),
		Totals:  m.InitialTotals,
	}
	for i := 0; i < m.NumNodes; i++ {
		c.Indices = append(c.Indices, i)
		c.Modes = append(c.Modes, m.InitialModes[i])
	}
	return c
}

// Last returns the top-of-stack index and mode. Callers must not call
// Last on an empty Chain.
func (c *Chain) Last() (idx int, mode region.Mode) {
	n := len(c.Indices)
	return c.Indices[n-1], c.Modes[n-1]
}

// Empty reports whether the chain has been fully popped (root included).
func (c *Chain) Empty() bool { return len(c.Indices) == 0 }

// Snapshot returns a deep copy suitable for long-lived storage in a
// ChainArena slot (the live Chain is mutated in place on every walker
// step, so a snapshot must not alias its backing arrays).
func (c *Chain) Snapshot() Chain {
	idx := make([]int, len(c.Indices))
	copy(idx, c.Indices)
	modes := make([]region.Mode, len(c.Modes))
	copy(modes, c.Modes)
	return Chain{Indices: idx, Modes: modes, Totals: c.Totals}
}

// Fingerprint returns the Cantor/elegant-pair encoding of
// (lodging, storage) used as the ChainArena key. x = lodging, y =
// storage, per the data model: if x < max(x,y), k = y² + x; else
// k = x² + x + y. This is an injection ℕ×ℕ → ℕ.
func Fingerprint(lodging, storage int) int {
	x, y := lodging, storage
	if x < y {
		return y*y + x
	}
	return x*x + x + y
}
