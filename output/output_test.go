package output_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/housecraft"
	"github.com/brynhall/housecraft/output"
)

func sampleChains() []housecraft.Chain {
	return []housecraft.Chain{
		{Lodging: 0, Storage: 0, Cost: 0, Indices: []string{""}, States: []housecraft.State{0}},
		{Lodging: 3, Storage: 5, Cost: 2, Indices: []string{"", "B"}, States: []housecraft.State{0, 1}},
	}
}

// S6: the output is a JSON array; each inner object carries exactly
// the five keys lodging/storage/cost/indices/states, in that order,
// with indices and states the same length.
func TestWriteChains_ShapeMatchesSeedScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.json")
	require.NoError(t, output.WriteChains(path, sampleChains(), false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var generic []json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &generic))
	require.Len(t, generic, 2)

	for _, obj := range generic {
		var ordered map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(obj, &ordered))
		require.Len(t, ordered, 5)
		for _, key := range []string{"lodging", "storage", "cost", "indices", "states"} {
			_, ok := ordered[key]
			require.True(t, ok, "missing key %q", key)
		}

		var indices []string
		var states []int
		require.NoError(t, json.Unmarshal(ordered["indices"], &indices))
		require.NoError(t, json.Unmarshal(ordered["states"], &states))
		require.Equal(t, len(indices), len(states))
	}
}

// Each inner object is rendered on one line (outer array stays
// pretty-printed), matching the mixed layout spec.md §6 requires.
func TestWriteChains_InnerObjectsAreSingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.json")
	require.NoError(t, output.WriteChains(path, sampleChains(), false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	require.Equal(t, "[\n", content[:2])

	lines := 0
	for _, b := range raw {
		if b == '\n' {
			lines++
		}
	}
	// Opening line, one line per chain, closing line.
	require.Equal(t, len(sampleChains())+2, lines)
}

func TestWriteChains_ValidationModeEmptiesIndicesAndStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation.json")
	require.NoError(t, output.WriteChains(path, sampleChains(), true))

	chains, err := output.ReadChains(path)
	require.NoError(t, err)
	require.Len(t, chains, 2)
	for _, c := range chains {
		require.Empty(t, c.Indices)
		require.Empty(t, c.States)
	}
}

func TestWriteChains_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "region.json")
	require.NoError(t, output.WriteChains(path, sampleChains(), false))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestReadChains_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.json")
	want := sampleChains()
	require.NoError(t, output.WriteChains(path, want, false))

	got, err := output.ReadChains(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRegionPath_ReplacesSpacesWithUnderscores(t *testing.T) {
	got := output.RegionPath("/data", "East Ashfield")
	require.Equal(t, filepath.Join("/data", "East_Ashfield.json"), got)
}

func TestValidationPath_NestsUnderValidationHiGHS(t *testing.T) {
	got := output.ValidationPath("/data", "Ashfield")
	require.Equal(t, filepath.Join("/data", "validation", "HiGHS", "Ashfield.json"), got)
}
