package housecraft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/housecraft"
	"github.com/brynhall/housecraft/optimize"
	"github.com/brynhall/housecraft/region"
)

func TestBuildRegion_PropagatesValidationErrors(t *testing.T) {
	_, err := housecraft.BuildRegion(map[string]region.Building{
		"B": {Key: "B", Parent: "missing"},
	}, "A")
	require.Error(t, err)
}

// S1: A(root), B parent=A, cost=1, storage=3, lodging=0.
func TestEnumerateDominant_S1(t *testing.T) {
	m, err := housecraft.BuildRegion(map[string]region.Building{
		"B": {Key: "B", Parent: "A", Cost: 1, StorageValue: 3},
	}, "A")
	require.NoError(t, err)

	chains, err := housecraft.EnumerateDominant(context.Background(), m, 4)
	require.NoError(t, err)
	require.Len(t, chains, 2)

	byStorage := map[int]housecraft.Chain{}
	for _, c := range chains {
		byStorage[c.Storage] = c
	}
	empty := byStorage[0]
	require.Equal(t, 0, empty.Cost)
	require.Equal(t, []string{"A"}, empty.Indices)

	full := byStorage[3]
	require.Equal(t, 1, full.Cost)
	require.ElementsMatch(t, []string{"A", "B"}, full.Indices)
	require.Len(t, full.States, len(full.Indices))
}

// The root index's external key is the caller's own root argument
// string, per spec.md §8 S1's indices:[A].
func TestEnumerateDominant_RootKeyIsPreserved(t *testing.T) {
	m, err := housecraft.BuildRegion(map[string]region.Building{
		"B": {Key: "B", Parent: "town-hall", Cost: 1, StorageValue: 1},
	}, "town-hall")
	require.NoError(t, err)

	chains, err := housecraft.EnumerateDominant(context.Background(), m, 1)
	require.NoError(t, err)
	for _, c := range chains {
		require.Equal(t, "town-hall", c.Indices[0])
	}
}

func TestOptimizeDominant_AgreesWithEnumerateDominant(t *testing.T) {
	m, err := housecraft.BuildRegion(map[string]region.Building{
		"B": {Key: "B", Parent: "A", Cost: 2, StorageValue: 5},
		"C": {Key: "C", Parent: "A", Cost: 3, LodgingValue: 4},
	}, "A")
	require.NoError(t, err)

	enumerated, err := housecraft.EnumerateDominant(context.Background(), m, 4)
	require.NoError(t, err)
	optimized, err := housecraft.OptimizeDominant(context.Background(), m, optimize.Options{Workers: 4})
	require.NoError(t, err)

	toSet := func(chains []housecraft.Chain) map[[3]int]bool {
		set := make(map[[3]int]bool, len(chains))
		for _, c := range chains {
			set[[3]int{c.Cost, c.Storage, c.Lodging}] = true
		}
		return set
	}
	require.Equal(t, toSet(enumerated), toSet(optimized))
}

func TestEnumerateDominant_IndicesAndStatesSameLength(t *testing.T) {
	m, err := housecraft.BuildRegion(map[string]region.Building{
		"B": {Key: "B", Parent: "A", Cost: 2, StorageValue: 5},
		"C": {Key: "C", Parent: "A", Cost: 3, LodgingValue: 4},
		"D": {Key: "D", Parent: "B", Cost: 1, StorageValue: 2},
	}, "A")
	require.NoError(t, err)

	chains, err := housecraft.EnumerateDominant(context.Background(), m, 1)
	require.NoError(t, err)
	require.NotEmpty(t, chains)
	for _, c := range chains {
		require.Len(t, c.States, len(c.Indices))
	}
}
