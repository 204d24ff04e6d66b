package partition_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/partition"
	"github.com/brynhall/housecraft/region"
	"github.com/brynhall/housecraft/walker"
)

func fullWalkTotals(t *testing.T, m *region.Model) [][3]int {
	t.Helper()
	chains := walker.EnumerateAll(m)
	out := make([][3]int, len(chains))
	for i, c := range chains {
		out[i] = [3]int{c.Totals.Cost, c.Totals.Storage, c.Totals.Lodging}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// jobTotals drives every job descriptor's walker to its stop boundary
// and collects every totals triple visited, mirroring parallel.runJob
// (including its boundary-inclusive final state) without requiring a
// merge step.
func jobTotals(m *region.Model, jobs []partition.Job) [][3]int {
	var out [][3]int
	for _, job := range jobs {
		w := walker.New(m, append([]int(nil), job.StartIndices...), append([]region.Mode(nil), job.StartModes...), job.StartTotals)
		for {
			indices, _, totals := w.State()
			atBoundary := job.StopIndex > 0 && len(indices) == job.StopIndex
			if !atBoundary && !job.Continue(indices) {
				break
			}
			out = append(out, [3]int{totals.Cost, totals.Storage, totals.Lodging})
			if atBoundary {
				break
			}
			w.Step()
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

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

func TestSplit_ZeroOrNegativeWorkersIsOneTrivialJob(t *testing.T) {
	m := buildTestRegion(t)
	jobs := partition.Split(m, 0)
	require.Len(t, jobs, 1)
	require.Equal(t, 0, jobs[0].StopIndex)
	require.Equal(t, 0, jobs[0].StopValue)

	jobs = partition.Split(m, -1)
	require.Len(t, jobs, 1)
	require.Equal(t, 0, jobs[0].StopIndex)
}

func TestSplit_SingleNodeRegionIsOneTrivialJob(t *testing.T) {
	m, err := region.Build(map[string]region.Building{}, "A")
	require.NoError(t, err)

	jobs := partition.Split(m, 8)
	require.Len(t, jobs, 1)
}

// The jobs Split produces must partition the full walk exactly: every
// state the unrestricted walker visits appears in exactly one job, and
// no extra states appear.
func TestSplit_JobsCoverTheFullWalkExactlyOnce(t *testing.T) {
	m := buildTestRegion(t)

	for _, workers := range []int{1, 2, 4, 8} {
		jobs := partition.Split(m, workers)
		require.Equal(t, fullWalkTotals(t, m), jobTotals(m, jobs), "workers=%d", workers)
	}
}
