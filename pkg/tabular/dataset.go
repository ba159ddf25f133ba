// Package tabular provides the in-memory dataset model shared by the
// reconciliation pipeline: a column-ordered table of string cells, schema
// harmonization across heterogeneous column names, and coordinate cleaning.
// Every operation returns a new dataset; inputs are never mutated.
package tabular

import (
	"slices"
	"strconv"
	"strings"
)

// Row is a single record keyed by canonical column name.
// An absent key or empty cell both mean "missing".
type Row map[string]string

// Get returns the cell value and whether it is present and non-blank.
// The value is returned verbatim: identity-key comparison downstream is
// exact string equality, so no whitespace normalization happens here.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Float parses the cell as a float64. The second return is false when the
// cell is missing or not numeric.
func (r Row) Float(column string) (float64, bool) {
	v, ok := r.Get(column)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered collection of rows with a declared column order.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New creates an empty dataset with the given column order.
func New(columns ...string) Dataset {
	return Dataset{Columns: slices.Clone(columns)}
}

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d.Rows)
}

// Empty reports whether the dataset has no rows.
func (d Dataset) Empty() bool {
	return len(d.Rows) == 0
}

// HasColumn reports whether the dataset declares the column.
func (d Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Append adds a row. The row is stored as-is; callers hand over ownership.
func (d *Dataset) Append(row Row) {
	d.Rows = append(d.Rows, row)
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Columns: slices.Clone(d.Columns),
		Rows:    make([]Row, 0, len(d.Rows)),
	}
	for _, row := range d.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}
