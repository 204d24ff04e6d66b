// Package output writes the computed chain set to disk in the exact
// layout spec.md §6 mandates: a pretty-printed outer JSON array whose
// inner chain objects are each collapsed onto a single line, with
// their five keys emitted in a fixed order. encoding/json's
// MarshalIndent does not produce this mixed layout on its own, so
// WriteChains assembles it directly the way the corpus's other
// `saveSummary`-style writers hand-build JSON bytes rather than rely
// purely on struct tags (cmd/cli/cmd/analyze.go in the retrieved
// corpus).
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/brynhall/housecraft/hcerrors"
	"github.com/brynhall/housecraft/housecraft"
)

// chainRecord is the exact five-key external shape, field order fixed
// by struct field order (encoding/json preserves declaration order).
type chainRecord struct {
	Lodging int      `json:"lodging"`
	Storage int      `json:"storage"`
	Cost    int      `json:"cost"`
	Indices []string `json:"indices"`
	States  []int    `json:"states"`
}

// WriteChains writes chains to path as a JSON array. When validation
// is true, every record's indices/states arrays are emitted empty,
// matching the validation-mode contract consumers must tolerate.
func WriteChains(path string, chains []housecraft.Chain, validation bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return hcerrors.Wrap(hcerrors.ErrIoFailure, "", "creating output directory: "+err.Error())
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, c := range chains {
		rec := toRecord(c, validation)
		line, err := json.Marshal(rec)
		if err != nil {
			return hcerrors.Wrap(hcerrors.ErrIoFailure, "", "marshaling chain: "+err.Error())
		}
		buf.WriteString("  ")
		buf.Write(line)
		if i < len(chains)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return hcerrors.Wrap(hcerrors.ErrIoFailure, "", "writing "+path+": "+err.Error())
	}
	return nil
}

func toRecord(c housecraft.Chain, validation bool) chainRecord {
	if validation {
		return chainRecord{
			Lodging: c.Lodging,
			Storage: c.Storage,
			Cost:    c.Cost,
			Indices: []string{},
			States:  []int{},
		}
	}
	states := make([]int, len(c.States))
	for i, s := range c.States {
		states[i] = int(s)
	}
	return chainRecord{
		Lodging: c.Lodging,
		Storage: c.Storage,
		Cost:    c.Cost,
		Indices: c.Indices,
		States:  states,
	}
}

// ReadChains reads back a JSON array previously written by
// WriteChains, for the CLI's `buildings` filter subcommand.
func ReadChains(path string) ([]housecraft.Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", "reading "+path+": "+err.Error())
	}
	var recs []chainRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", "parsing "+path+": "+err.Error())
	}
	out := make([]housecraft.Chain, len(recs))
	for i, r := range recs {
		states := make([]housecraft.State, len(r.States))
		for j, s := range r.States {
			states[j] = housecraft.State(s)
		}
		out[i] = housecraft.Chain{
			Lodging: r.Lodging,
			Storage: r.Storage,
			Cost:    r.Cost,
			Indices: r.Indices,
			States:  states,
		}
	}
	return out, nil
}

// RegionPath returns the canonical output path for a region's
// exhaustive/optimize result: ./data/housecraft/{region}.json with
// spaces replaced by underscores.
func RegionPath(dir, region string) string {
	return filepath.Join(dir, sanitizeRegion(region)+".json")
}

// ValidationPath returns the canonical path for the validation variant
// of a region's result.
func ValidationPath(dir, region string) string {
	return filepath.Join(dir, "validation", "HiGHS", sanitizeRegion(region)+".json")
}

func sanitizeRegion(region string) string {
	out := make([]byte, len(region))
	for i := 0; i < len(region); i++ {
		if region[i] == ' ' {
			out[i] = '_'
		} else {
			out[i] = region[i]
		}
	}
	return string(out)
}
