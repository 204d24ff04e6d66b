package walker

import (
	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/region"
)

// Collector is the plain in-memory Observer used for prefix
// enumeration and for tests; production runs use an arena.Arena
// observer instead (it discards everything but the current best per
// fingerprint). Both satisfy Observer — the hot loop is monomorphic
// over whichever is plugged in.
type Collector struct {
	Chains []chain.Chain
}

// Visit implements Observer by snapshotting and appending.
func (c *Collector) Visit(indices []int, modes []region.Mode, totals region.Totals) {
	idx := make([]int, len(indices))
	copy(idx, indices)
	md := make([]region.Mode, len(modes))
	copy(md, modes)
	c.Chains = append(c.Chains, chain.Chain{Indices: idx, Modes: md, Totals: totals})
}

// EnumerateAll runs a fresh full walk over m and returns every visited
// chain in pop-jump-push order. Intended for small or truncated
// models (prefix enumeration, tests) — it retains every state, unlike
// the arena path which only retains the best per fingerprint.
func EnumerateAll(m *region.Model) []chain.Chain {
	w := NewFull(m)
	col := &Collector{}
	Run(w, col)
	return col.Chains
}
