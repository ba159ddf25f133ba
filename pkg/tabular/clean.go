package tabular

import (
	"github.com/agentstation/restomap/pkg/geo"
)

// CleanStats reports aggregate before/after row counts for a cleaning
// pass. Dropped rows are visible only in these counts; there are no
// per-row diagnostics.
type CleanStats struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// Dropped returns the number of rows removed by the cleaning pass.
func (s CleanStats) Dropped() int {
	return s.Before - s.After
}

// CleanCoordinates drops rows whose coordinate fields are missing,
// non-numeric, or fail validation against the validator's bounds.
// An empty input is returned unchanged. The input dataset is never
// mutated; the result is a new filtered dataset. Idempotent.
func CleanCoordinates(d Dataset, latField, lonField string, v geo.Validator) (Dataset, CleanStats) {
	stats := CleanStats{Before: d.Len()}

	if d.Empty() {
		return d.Clone(), stats
	}

	out := Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]Row, 0, len(d.Rows)),
	}

	for _, row := range d.Rows {
		lat, ok := row.Float(latField)
		if !ok {
			continue
		}
		lon, ok := row.Float(lonField)
		if !ok {
			continue
		}
		if !v.Validate(lat, lon) {
			continue
		}
		out.Rows = append(out.Rows, row.Clone())
	}

	stats.After = out.Len()
	return out, stats
}
