package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/restomap/internal/cmd/output"
	"github.com/agentstation/restomap/pkg/reconcile"
	"github.com/agentstation/restomap/pkg/summary"
	"github.com/agentstation/restomap/pkg/tabular"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "JSON", "yaml", "csv", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, valid)
	}
	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	s := summary.Summary{
		Counts: map[reconcile.Category]int{reconcile.CategoryMatch: 2},
		Total:  2,
	}
	require.NoError(t, f.Format(&buf, s))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(2), decoded["total"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	require.NoError(t, f.Format(&buf, map[string]int{"total": 3}))
	assert.Contains(t, buf.String(), "total: 3")
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	require.NoError(t, f.Format(&buf, output.Data{
		Headers: []string{"Name", "Count"},
		Rows:    [][]string{{"A", "3"}},
	}))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "A")
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatCSV)

	require.NoError(t, f.Format(&buf, output.Data{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "3,4", lines[2])
}

func TestRecordsToTableData(t *testing.T) {
	records := []reconcile.CategorizedRecord{
		{
			IdentityDisplayName: "A",
			Branch:              "1",
			Lat:                 -6.2,
			Lon:                 106.8,
			Category:            reconcile.CategoryMatch,
			Color:               reconcile.ColorMatch,
		},
	}

	d := output.RecordsToTableData(records)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, []string{"A", "1", "-6.2", "106.8", "Match", "[0,255,0,180]"}, d.Rows[0])
}

func TestSummaryToTableData(t *testing.T) {
	s := summary.Summarize(reconcile.Partition{
		Matched: []reconcile.CategorizedRecord{{IdentityKey: "A", Category: reconcile.CategoryMatch}},
		ESBOnly: []reconcile.CategorizedRecord{{IdentityKey: "B", Category: reconcile.CategoryESBOnly}},
	}, 15)

	d := output.SummaryToTableData(s)
	require.Len(t, d.Rows, 4, "three categories plus total")
	assert.Equal(t, []string{"Match", "1", "50.00%"}, d.Rows[0])
	assert.Equal(t, []string{"Total", "2", ""}, d.Rows[3])
}

func TestRankingToTableData(t *testing.T) {
	d := output.RankingToTableData([]summary.IdentityCount{
		{IdentityKey: "A", Count: 3},
		{IdentityKey: "B", Count: 1},
	})
	require.Len(t, d.Rows, 2)
	assert.Equal(t, []string{"1", "A", "3"}, d.Rows[0])
	assert.Equal(t, []string{"2", "B", "1"}, d.Rows[1])
}

func TestStatsToTableData(t *testing.T) {
	d := output.StatsToTableData(map[string]tabular.CleanStats{
		"jakarta": {Before: 5, After: 4},
		"esb":     {Before: 3, After: 3},
	})
	require.Len(t, d.Rows, 2)
	assert.Equal(t, []string{"esb", "3", "3", "0"}, d.Rows[0])
	assert.Equal(t, []string{"jakarta", "5", "4", "1"}, d.Rows[1])
}
