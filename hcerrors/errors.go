// Package hcerrors defines the sentinel error taxonomy shared across
// the housecraft core and its collaborators (ingestion, CLI, output).
//
// Errors:
//
//	MalformedArborescence - missing parent, cycle, or dangling reference while building a RegionModel.
//	MissingRegion          - a requested region name is absent from the input tables.
//	SolverFailure          - the MIP solver returned an unexpected (non-optimal, non-infeasible) status.
//	IoFailure              - an input table or output path was unavailable.
//	InvalidCraftIndex      - a craft index referenced by a building isn't in the recipe table.
package hcerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Compare with errors.Is, never with ==, since
// Detailed wraps these for context-carrying propagation.
var (
	// ErrMalformedArborescence indicates the input buildings do not form
	// a single connected, cycle-free tree rooted at the declared root.
	ErrMalformedArborescence = errors.New("hcerrors: malformed arborescence")

	// ErrMissingRegion indicates the requested region name has no entry
	// in the loaded region table.
	ErrMissingRegion = errors.New("hcerrors: region not found")

	// ErrSolverFailure indicates the MIP solver returned a status other
	// than optimal or infeasible.
	ErrSolverFailure = errors.New("hcerrors: solver failure")

	// ErrIoFailure indicates an input table or output path could not be
	// read or written.
	ErrIoFailure = errors.New("hcerrors: I/O failure")

	// ErrInvalidCraftIndex indicates a craft index has no corresponding
	// recipe table entry. Callers should log once and skip the entry;
	// it is never fatal on its own.
	ErrInvalidCraftIndex = errors.New("hcerrors: invalid craft index")
)

// Detailed wraps a sentinel with region/cell context for propagation up
// to the CLI layer, mirroring the code+message+cause shape the rest of
// the retrieved corpus uses for application errors.
type Detailed struct {
	Err    error  // one of the sentinels above
	Region string // region name, empty if not applicable
	Detail string // free-form context, e.g. "(s_lb=4, l_lb=2)"
}

// Error implements the error interface.
func (d *Detailed) Error() string {
	switch {
	case d.Region != "" && d.Detail != "":
		return fmt.Sprintf("%s: region %q: %s", d.Err, d.Region, d.Detail)
	case d.Region != "":
		return fmt.Sprintf("%s: region %q", d.Err, d.Region)
	case d.Detail != "":
		return fmt.Sprintf("%s: %s", d.Err, d.Detail)
	default:
		return d.Err.Error()
	}
}

// Unwrap exposes the wrapped sentinel to errors.Is/errors.As.
func (d *Detailed) Unwrap() error { return d.Err }

// Wrap builds a Detailed error around one of the package sentinels.
func Wrap(sentinel error, region, detail string) error {
	return &Detailed{Err: sentinel, Region: region, Detail: detail}
}
