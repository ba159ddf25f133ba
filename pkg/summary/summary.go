// Package summary computes counts, percentages, and identity rankings
// over a reconciliation partition. It is consumed by presentation code
// and performs no rendering itself.
package summary

import (
	"sort"
	"strconv"

	"github.com/agentstation/restomap/pkg/constants"
	"github.com/agentstation/restomap/pkg/reconcile"
)

// Summary aggregates a partition into per-category counts, percentages
// of the grand total, and a ranking of the most frequent identity keys.
type Summary struct {
	// Counts holds the number of records per category.
	Counts map[reconcile.Category]int `json:"counts" yaml:"counts"`

	// Total is the grand total across all three categories.
	Total int `json:"total" yaml:"total"`

	// Percentages holds each category's share of the grand total,
	// formatted with two decimal places. When Total is zero every
	// entry is "0%".
	Percentages map[reconcile.Category]string `json:"percentages" yaml:"percentages"`

	// TopIdentities ranks identity keys by occurrence count across
	// the union of all three categories.
	TopIdentities []IdentityCount `json:"top_identities" yaml:"top_identities"`
}

// IdentityCount is one entry in the identity ranking.
type IdentityCount struct {
	IdentityKey string `json:"identity_key" yaml:"identity_key"`
	Count       int    `json:"count" yaml:"count"`
}

// Summarize computes a Summary over the partition. topN bounds the
// identity ranking; values < 1 fall back to the default ranking size.
// Ties in the ranking are broken by first-encountered order in the
// concatenation of matched, ESB-only, and Jakarta-only records.
func Summarize(p reconcile.Partition, topN int) Summary {
	if topN < 1 {
		topN = constants.DefaultTopN
	}

	s := Summary{
		Counts: map[reconcile.Category]int{
			reconcile.CategoryMatch:       len(p.Matched),
			reconcile.CategoryESBOnly:     len(p.ESBOnly),
			reconcile.CategoryJakartaOnly: len(p.JakartaOnly),
		},
		Total:       p.Total(),
		Percentages: make(map[reconcile.Category]string, 3),
	}

	for _, cat := range reconcile.Categories() {
		s.Percentages[cat] = percent(s.Counts[cat], s.Total)
	}

	s.TopIdentities = rankIdentities(p.Records(), topN)
	return s
}

func percent(count, total int) string {
	if total == 0 {
		return "0%"
	}
	share := float64(count) / float64(total) * 100
	return strconv.FormatFloat(share, 'f', constants.PercentPrecision, 64) + "%"
}

func rankIdentities(records []reconcile.CategorizedRecord, topN int) []IdentityCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, rec := range records {
		if rec.IdentityKey == "" {
			continue
		}
		if _, ok := counts[rec.IdentityKey]; !ok {
			firstSeen[rec.IdentityKey] = i
		}
		counts[rec.IdentityKey]++
	}

	ranked := make([]IdentityCount, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, IdentityCount{IdentityKey: key, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].IdentityKey] < firstSeen[ranked[j].IdentityKey]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
