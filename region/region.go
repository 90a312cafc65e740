// Package region loads the stop table and slices it into per-region stop
// lists for the tour builder.
//
// The table is a three-column CSV — stop name, sub-area, region label —
// with one header row, and its rows are assumed pre-grouped by region
// label. Partition relies on that grouping: it takes the contiguous run of
// a label and prepends the depot. Non-contiguous labels silently yield a
// too-short slice; that is the documented caller contract, mirrored from
// the upstream data preparation, and is not re-validated here.
package region

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for stop-table loading and partitioning.
var (
	// ErrRegionNotFound indicates that the requested region label does not
	// occur in the stop table.
	ErrRegionNotFound = errors.New("region: label not found")

	// ErrBadRecord indicates a malformed stop-table row.
	ErrBadRecord = errors.New("region: malformed record")
)

// Stop is one row of the stop table.
type Stop struct {
	// Name is the stop name, a node ID of the road graph.
	Name string

	// Suburb is the sub-area the stop lies in (informational only).
	Suburb string

	// Region is the label Partition groups by.
	Region string
}

// Load reads the stop table from r: a header row followed by
// name,suburb,region records.
//
// Errors: ErrBadRecord (wrapped with the row number) for rows without
// exactly three fields; CSV syntax errors pass through.
func Load(r io.Reader) ([]Stop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count validated per row below
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("region: reading stop table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrBadRecord)
	}

	// First row is the header.
	stops := make([]Stop, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3", ErrBadRecord, i+2, len(row))
		}
		stops = append(stops, Stop{
			Name:   strings.TrimSpace(row[0]),
			Suburb: strings.TrimSpace(row[1]),
			Region: strings.TrimSpace(row[2]),
		})
	}

	return stops, nil
}

// Partition extracts the contiguous run of stops labelled label and
// prepends depot, producing a stop list ready for tour.NearestNeighbor.
//
// The run spans from the label's first occurrence to its last; rows are
// assumed pre-grouped (see the package comment), so everything in between
// carries the same label.
//
// Errors: ErrRegionNotFound (wrapped with the label) when label is absent.
func Partition(stops []Stop, label, depot string) ([]string, error) {
	first, last := -1, -1
	for i, s := range stops {
		if s.Region != label {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, label)
	}

	out := make([]string, 0, last-first+2)
	out = append(out, depot)
	for _, s := range stops[first : last+1] {
		out = append(out, s.Name)
	}

	return out, nil
}

// Labels returns the distinct region labels in first-appearance order,
// which is the batch processing order of the executable.
func Labels(stops []Stop) []string {
	seen := make(map[string]bool, 8)
	var out []string
	for _, s := range stops {
		if seen[s.Region] {
			continue
		}
		seen[s.Region] = true
		out = append(out, s.Region)
	}

	return out
}
