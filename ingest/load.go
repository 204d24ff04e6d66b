package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/brynhall/housecraft/hcerrors"
)

// LoadBuildings reads a JSON array of BuildingRecord from path, keyed
// by each record's own Key.
func LoadBuildings(path string) (map[string]BuildingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", fmt.Sprintf("opening %s: %v", path, err))
	}
	defer f.Close()

	var records []BuildingRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", fmt.Sprintf("decoding %s: %v", path, err))
	}

	out := make(map[string]BuildingRecord, len(records))
	for _, r := range records {
		out[r.Key] = r
	}
	return out, nil
}

// LoadTables reads the three u32-key -> name CSV lookups. Each file is
// expected to have no header and two columns: numeric key, name.
func LoadTables(charCSV, nodeCSV, regionCSV string) (RecipeTables, error) {
	chars, err := loadKeyNameCSV(charCSV)
	if err != nil {
		return RecipeTables{}, err
	}
	nodes, err := loadKeyNameCSV(nodeCSV)
	if err != nil {
		return RecipeTables{}, err
	}
	regions, err := loadKeyNameCSV(regionCSV)
	if err != nil {
		return RecipeTables{}, err
	}
	return RecipeTables{Characters: chars, Nodes: nodes, Regions: regions}, nil
}

func loadKeyNameCSV(path string) (map[int]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", fmt.Sprintf("opening %s: %v", path, err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	out := make(map[int]string)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", fmt.Sprintf("parsing %s: %v", path, err))
		}
		key, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, hcerrors.Wrap(hcerrors.ErrIoFailure, "", fmt.Sprintf("parsing %s: bad key %q", path, rec[0]))
		}
		out[key] = rec[1]
	}
	return out, nil
}
