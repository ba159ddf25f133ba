package summary_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/restomap/pkg/reconcile"
	"github.com/agentstation/restomap/pkg/summary"
)

func rec(key string, cat reconcile.Category) reconcile.CategorizedRecord {
	return reconcile.CategorizedRecord{
		IdentityDisplayName: key,
		IdentityKey:         key,
		Category:            cat,
		Color:               cat.Color(),
	}
}

func TestSummarizeCounts(t *testing.T) {
	p := reconcile.Partition{
		Matched: []reconcile.CategorizedRecord{rec("A", reconcile.CategoryMatch)},
		ESBOnly: []reconcile.CategorizedRecord{rec("B", reconcile.CategoryESBOnly)},
		JakartaOnly: []reconcile.CategorizedRecord{
			rec("A", reconcile.CategoryJakartaOnly),
			rec("C", reconcile.CategoryJakartaOnly),
		},
	}

	s := summary.Summarize(p, 15)

	assert.Equal(t, 1, s.Counts[reconcile.CategoryMatch])
	assert.Equal(t, 1, s.Counts[reconcile.CategoryESBOnly])
	assert.Equal(t, 2, s.Counts[reconcile.CategoryJakartaOnly])
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, "25.00%", s.Percentages[reconcile.CategoryMatch])
	assert.Equal(t, "50.00%", s.Percentages[reconcile.CategoryJakartaOnly])
}

func TestSummarizePercentagesSumTo100(t *testing.T) {
	p := reconcile.Partition{
		Matched: []reconcile.CategorizedRecord{
			rec("A", reconcile.CategoryMatch),
			rec("B", reconcile.CategoryMatch),
		},
		ESBOnly: []reconcile.CategorizedRecord{rec("C", reconcile.CategoryESBOnly)},
	}

	s := summary.Summarize(p, 15)

	var sum float64
	for _, pct := range s.Percentages {
		v, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
		require.NoError(t, err)
		sum += v
	}
	assert.InDelta(t, 100.0, sum, 0.02)
}

func TestSummarizeEmptyPartition(t *testing.T) {
	s := summary.Summarize(reconcile.Partition{}, 15)

	assert.Equal(t, 0, s.Total)
	for _, cat := range reconcile.Categories() {
		assert.Equal(t, "0%", s.Percentages[cat])
	}
	assert.Empty(t, s.TopIdentities)
}

func TestSummarizeRanking(t *testing.T) {
	p := reconcile.Partition{
		Matched: []reconcile.CategorizedRecord{
			rec("A", reconcile.CategoryMatch),
			rec("B", reconcile.CategoryMatch),
		},
		ESBOnly: []reconcile.CategorizedRecord{
			rec("B", reconcile.CategoryESBOnly),
			rec("C", reconcile.CategoryESBOnly),
		},
		JakartaOnly: []reconcile.CategorizedRecord{
			rec("A", reconcile.CategoryJakartaOnly),
			rec("A", reconcile.CategoryJakartaOnly),
		},
	}

	s := summary.Summarize(p, 15)

	require.Len(t, s.TopIdentities, 3)
	assert.Equal(t, summary.IdentityCount{IdentityKey: "A", Count: 3}, s.TopIdentities[0])
	assert.Equal(t, summary.IdentityCount{IdentityKey: "B", Count: 2}, s.TopIdentities[1])
	assert.Equal(t, summary.IdentityCount{IdentityKey: "C", Count: 1}, s.TopIdentities[2])
}

func TestSummarizeRankingTieBreak(t *testing.T) {
	// D and E tie on count; D appears first in the matched block so it
	// must rank ahead of E from the ESB-only block.
	p := reconcile.Partition{
		Matched: []reconcile.CategorizedRecord{rec("D", reconcile.CategoryMatch)},
		ESBOnly: []reconcile.CategorizedRecord{rec("E", reconcile.CategoryESBOnly)},
	}

	s := summary.Summarize(p, 15)

	require.Len(t, s.TopIdentities, 2)
	assert.Equal(t, "D", s.TopIdentities[0].IdentityKey)
	assert.Equal(t, "E", s.TopIdentities[1].IdentityKey)
}

func TestSummarizeTopNBounds(t *testing.T) {
	var esb []reconcile.CategorizedRecord
	for i := 0; i < 20; i++ {
		esb = append(esb, rec("brand-"+strconv.Itoa(i), reconcile.CategoryESBOnly))
	}
	p := reconcile.Partition{ESBOnly: esb}

	assert.Len(t, summary.Summarize(p, 5).TopIdentities, 5)
	assert.Len(t, summary.Summarize(p, 0).TopIdentities, 15, "non-positive topN uses the default")
	assert.Len(t, summary.Summarize(p, 100).TopIdentities, 20)
}
