package output

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/agentstation/restomap/pkg/reconcile"
	"github.com/agentstation/restomap/pkg/summary"
	"github.com/agentstation/restomap/pkg/tabular"
)

// CSVFormatter outputs comma-separated values. Data keeps its header
// order; other values are converted through the table reflection path.
type CSVFormatter struct{}

// Format implements the Formatter interface for CSV output.
func (f *CSVFormatter) Format(w io.Writer, data any) error {
	d, ok := data.(Data)
	if !ok {
		tf := &TableFormatter{}
		converted := tf.convertToTableData(data)
		if converted == nil {
			return (&JSONFormatter{Indent: "  "}).Format(w, data)
		}
		d = *converted
	}

	cw := csv.NewWriter(w)
	if len(d.Headers) > 0 {
		if err := cw.Write(d.Headers); err != nil {
			return err
		}
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RecordsToTableData converts categorized records into table data with
// the uniform output column order.
func RecordsToTableData(records []reconcile.CategorizedRecord) Data {
	d := Data{
		Headers: []string{"Name", "Branch", "Lat", "Lon", "Category", "Color"},
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft,
		},
	}
	for _, rec := range records {
		d.Rows = append(d.Rows, []string{
			rec.IdentityDisplayName,
			rec.Branch,
			strconv.FormatFloat(rec.Lat, 'f', -1, 64),
			strconv.FormatFloat(rec.Lon, 'f', -1, 64),
			string(rec.Category),
			rec.Color.String(),
		})
	}
	return d
}

// SummaryToTableData converts a summary into a per-category table.
func SummaryToTableData(s summary.Summary) Data {
	d := Data{
		Headers:         []string{"Category", "Count", "Percentage"},
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight},
	}
	for _, cat := range reconcile.Categories() {
		d.Rows = append(d.Rows, []string{
			string(cat),
			strconv.Itoa(s.Counts[cat]),
			s.Percentages[cat],
		})
	}
	d.Rows = append(d.Rows, []string{"Total", strconv.Itoa(s.Total), ""})
	return d
}

// RankingToTableData converts the identity ranking into table data.
func RankingToTableData(ranking []summary.IdentityCount) Data {
	d := Data{
		Headers:         []string{"Rank", "Identity", "Count"},
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
	for i, entry := range ranking {
		d.Rows = append(d.Rows, []string{
			strconv.Itoa(i + 1),
			entry.IdentityKey,
			strconv.Itoa(entry.Count),
		})
	}
	return d
}

// StatsToTableData converts per-dataset cleaning counts into table
// data, sorted by dataset name for stable output.
func StatsToTableData(stats map[string]tabular.CleanStats) Data {
	d := Data{
		Headers:         []string{"Dataset", "Before", "After", "Dropped"},
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight},
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := stats[name]
		d.Rows = append(d.Rows, []string{
			name,
			strconv.Itoa(st.Before),
			strconv.Itoa(st.After),
			strconv.Itoa(st.Dropped()),
		})
	}
	return d
}
