package parallel_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/dominance"
	"github.com/brynhall/housecraft/parallel"
	"github.com/brynhall/housecraft/partition"
	"github.com/brynhall/housecraft/region"
)

func buildTestRegion(t *testing.T) *region.Model {
	t.Helper()
	buildings := map[string]region.Building{
		"B": {Key: "B", Parent: "A", Cost: 2, StorageValue: 5},
		"C": {Key: "C", Parent: "A", Cost: 3, LodgingValue: 4},
		"D": {Key: "D", Parent: "B", Cost: 1, StorageValue: 2},
		"E": {Key: "E", Parent: "C", Cost: 1, LodgingValue: 3},
	}
	m, err := region.Build(buildings, "A")
	require.NoError(t, err)
	return m
}

func sortedTotals(chains []region.Totals) []region.Totals {
	out := append([]region.Totals(nil), chains...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if out[i].Storage != out[j].Storage {
			return out[i].Storage < out[j].Storage
		}
		return out[i].Lodging < out[j].Lodging
	})
	return out
}

// S5: the dominant set produced by a single worker must match the set
// produced by many workers, as a multiset of (cost, storage, lodging)
// totals after sorting.
func TestRun_DominantSetIndependentOfWorkerCount(t *testing.T) {
	m := buildTestRegion(t)

	var baseline []region.Totals
	for _, workers := range []int{1, 2, 3, 4, 8} {
		jobs := partition.Split(m, workers)
		merged, err := parallel.Run(context.Background(), m, jobs)
		require.NoError(t, err)

		dominant := dominance.Filter(merged.Entries())
		totals := make([]region.Totals, len(dominant))
		for i, c := range dominant {
			totals[i] = c.Totals
		}
		totals = sortedTotals(totals)

		if baseline == nil {
			baseline = totals
			continue
		}
		require.Equal(t, baseline, totals, "workers=%d produced a different dominant set", workers)
	}
}

func TestRun_EmptyJobsReturnsEmptyArena(t *testing.T) {
	m := buildTestRegion(t)
	merged, err := parallel.Run(context.Background(), m, nil)
	require.NoError(t, err)
	require.Equal(t, 0, merged.Len())
}

func TestRun_RespectsCancellation(t *testing.T) {
	m := buildTestRegion(t)
	jobs := partition.Split(m, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parallel.Run(ctx, m, jobs)
	require.Error(t, err)
}
