package dominance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/dominance"
	"github.com/brynhall/housecraft/region"
)

func totals(cost, storage, lodging int) region.Totals {
	return region.Totals{Cost: cost, Storage: storage, Lodging: lodging}
}

func TestDominates_StrictlyBetterInAllThree(t *testing.T) {
	cheap := chain.Chain{Totals: totals(2, 5, 0)}
	expensive := chain.Chain{Totals: totals(9, 5, 0)}
	require.True(t, dominance.Dominates(cheap, expensive))
	require.False(t, dominance.Dominates(expensive, cheap))
}

func TestDominates_IdenticalTotalsNeitherDominates(t *testing.T) {
	a := chain.Chain{Totals: totals(2, 5, 0)}
	b := chain.Chain{Totals: totals(2, 5, 0)}
	require.False(t, dominance.Dominates(a, b))
	require.False(t, dominance.Dominates(b, a))
}

func TestDominates_TradeoffNeitherDominates(t *testing.T) {
	moreStorage := chain.Chain{Totals: totals(5, 10, 0)}
	moreLodging := chain.Chain{Totals: totals(5, 0, 10)}
	require.False(t, dominance.Dominates(moreStorage, moreLodging))
	require.False(t, dominance.Dominates(moreLodging, moreStorage))
}

func TestFilter_RemovesDominatedChains(t *testing.T) {
	chains := []chain.Chain{
		{Totals: totals(0, 0, 0)},
		{Totals: totals(2, 5, 0)},
		{Totals: totals(9, 5, 0)}, // dominated by (2,5,0)
		{Totals: totals(3, 0, 4)},
		{Totals: totals(5, 5, 4)},
	}

	out := dominance.Filter(chains)
	require.Len(t, out, 4)
	for _, c := range out {
		require.NotEqual(t, totals(9, 5, 0), c.Totals)
	}
}

// Filter is idempotent: applying it again to its own output changes
// nothing, since the output is already an antichain.
func TestFilter_Idempotent(t *testing.T) {
	chains := []chain.Chain{
		{Totals: totals(0, 0, 0)},
		{Totals: totals(2, 5, 0)},
		{Totals: totals(9, 5, 0)},
		{Totals: totals(3, 0, 4)},
		{Totals: totals(5, 5, 4)},
	}

	once := dominance.Filter(chains)
	twice := dominance.Filter(once)
	require.Equal(t, once, twice)
}

// Filter sorts its output by (lodging asc, storage asc).
func TestFilter_SortOrder(t *testing.T) {
	chains := []chain.Chain{
		{Totals: totals(5, 5, 4)},
		{Totals: totals(0, 0, 0)},
		{Totals: totals(3, 0, 4)},
		{Totals: totals(2, 5, 0)},
	}

	out := dominance.Filter(chains)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1].Totals, out[i].Totals
		if prev.Lodging != cur.Lodging {
			require.Less(t, prev.Lodging, cur.Lodging)
		} else {
			require.LessOrEqual(t, prev.Storage, cur.Storage)
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	require.Empty(t, dominance.Filter(nil))
}
