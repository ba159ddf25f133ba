// Package reconcile classifies restaurant records from three sources into
// the Match / ESB-only / Jakarta-only partition using identity-key set
// operations. Identity comparison is exact string equality only: fuzzy
// identity resolution belongs to the upstream matcher, not this engine.
package reconcile

// Partition holds the three categorized outputs of a reconciliation.
// ESBOnly and JakartaOnly are each disjoint from Matched by construction,
// but not necessarily from each other: the two "only" sets are derived
// independently against the matched set, never cross-checked.
type Partition struct {
	Matched     []CategorizedRecord `json:"matched"`
	ESBOnly     []CategorizedRecord `json:"esb_only"`
	JakartaOnly []CategorizedRecord `json:"jakarta_only"`
}

// Total returns the grand total of records across all three categories.
func (p Partition) Total() int {
	return len(p.Matched) + len(p.ESBOnly) + len(p.JakartaOnly)
}

// Records returns all categorized records in deterministic order:
// matched, then ESB-only, then Jakarta-only.
func (p Partition) Records() []CategorizedRecord {
	out := make([]CategorizedRecord, 0, p.Total())
	out = append(out, p.Matched...)
	out = append(out, p.ESBOnly...)
	out = append(out, p.JakartaOnly...)
	return out
}

// Reconciler derives the three-way partition from cleaned, typed inputs.
type Reconciler interface {
	Reconcile(matched []MatchedPair, esb []ESBRecord, jakarta []JakartaRecord) Partition
}

// reconciler is the default implementation of Reconciler.
type reconciler struct{}

// New creates a new Reconciler.
func New() Reconciler {
	return &reconciler{}
}

// Reconcile produces the partition. All three inputs must already be
// harmonized and coordinate-cleaned; all three outputs may legitimately
// be empty.
func (r *reconciler) Reconcile(matched []MatchedPair, esb []ESBRecord, jakarta []JakartaRecord) Partition {
	matchedOut := categorizeMatched(matched)

	return Partition{
		Matched:     matchedOut,
		ESBOnly:     esbOnly(matched, esb),
		JakartaOnly: jakartaOnly(matched, jakarta),
	}
}

// categorizeMatched passes the matched input through with category Match.
// No filtering is applied beyond the coordinate cleaning done upstream.
func categorizeMatched(matched []MatchedPair) []CategorizedRecord {
	out := make([]CategorizedRecord, 0, len(matched))
	for _, m := range matched {
		out = append(out, CategorizedRecord{
			IdentityDisplayName: m.BrandName,
			Branch:              m.BranchName,
			Lat:                 m.Lat,
			Lon:                 m.Lon,
			Category:            CategoryMatch,
			Color:               ColorMatch,
			IdentityKey:         m.BrandName,
			Similarity:          m.Similarity,
			Confidence:          m.Confidence,
		})
	}
	return out
}

// esbOnly keeps every ESB row whose brand name is absent from the matched
// brand set. With an empty matched input there is no set to subtract and
// the entire ESB input is kept.
func esbOnly(matched []MatchedPair, esb []ESBRecord) []CategorizedRecord {
	matchedBrands := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		matchedBrands[m.BrandName] = struct{}{}
	}

	out := make([]CategorizedRecord, 0, len(esb))
	for _, e := range esb {
		if _, found := matchedBrands[e.BrandName]; found {
			continue
		}
		out = append(out, CategorizedRecord{
			IdentityDisplayName: e.BrandName,
			Branch:              e.BranchName,
			Lat:                 e.Lat,
			Lon:                 e.Lon,
			Category:            CategoryESBOnly,
			Color:               ColorESBOnly,
			IdentityKey:         e.BrandName,
			City:                e.City,
		})
	}
	return out
}

// jakartaOnly keeps every Jakarta row whose restaurant name is absent
// from the matched set's own restaurant-name field. The ESB-side brand
// field is deliberately not reused here: the two sources do not share a
// schema, so each side compares on its own identity key. Matched pairs
// without a restaurant name contribute nothing to the subtracted set.
func jakartaOnly(matched []MatchedPair, jakarta []JakartaRecord) []CategorizedRecord {
	matchedNames := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		if m.RestaurantName != "" {
			matchedNames[m.RestaurantName] = struct{}{}
		}
	}

	out := make([]CategorizedRecord, 0, len(jakarta))
	for _, j := range jakarta {
		if _, found := matchedNames[j.RestaurantName]; found {
			continue
		}
		out = append(out, CategorizedRecord{
			IdentityDisplayName: j.RestaurantName,
			Branch:              "",
			Lat:                 j.Lat,
			Lon:                 j.Lon,
			Category:            CategoryJakartaOnly,
			Color:               ColorJakartaOnly,
			IdentityKey:         j.RestaurantName,
			Pricing:             j.Pricing,
		})
	}
	return out
}
