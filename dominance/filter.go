// Package dominance reduces a set of chains to the strictly
// Pareto-optimal frontier under (cost down, storage up, lodging up).
package dominance

import (
	"sort"

	"github.com/brynhall/housecraft/chain"
)

// Dominates reports whether a strictly dominates b: a.Cost <= b.Cost,
// a.Storage >= b.Storage, a.Lodging >= b.Lodging, and the two triples
// differ. This is the strict Pareto definition of spec.md §3 (see
// DESIGN.md for the weaker alternative considered and rejected).
func Dominates(a, b chain.Chain) bool {
	if a.Totals.Cost > b.Totals.Cost || a.Totals.Storage < b.Totals.Storage || a.Totals.Lodging < b.Totals.Lodging {
		return false
	}
	return a.Totals != b.Totals
}

// Filter returns the subset of chains that no other chain in the input
// strictly dominates, sorted by (lodging asc, storage asc). O(n^2)
// comparisons, acceptable given n is the number of distinct
// fingerprints (spec.md bounds this at roughly 30k).
func Filter(chains []chain.Chain) []chain.Chain {
	n := len(chains)
	retained := make([]chain.Chain, 0, n)
	for i := 0; i < n; i++ {
		dominated := false
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(chains[j], chains[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			retained = append(retained, chains[i])
		}
	}

	sort.Slice(retained, func(i, j int) bool {
		if retained[i].Totals.Lodging != retained[j].Totals.Lodging {
			return retained[i].Totals.Lodging < retained[j].Totals.Lodging
		}
		return retained[i].Totals.Storage < retained[j].Totals.Storage
	})
	return retained
}
