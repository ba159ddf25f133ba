package reconcile

import (
	"fmt"
	"strconv"

	"github.com/agentstation/restomap/pkg/errors"
	"github.com/agentstation/restomap/pkg/tabular"
)

// Canonical column names the engine expects after harmonization.
const (
	ColBrandName       = "brand_name"
	ColBranchName      = "branch_name"
	ColRestaurantName  = "restaurant_name"
	ColLatitude        = "latitude"
	ColLongitude       = "longitude"
	ColLat             = "lat"
	ColLon             = "lon"
	ColCityName        = "city_name"
	ColPricing         = "pricing"
	ColNameSimilarity  = "name_similarity"
	ColMatchConfidence = "match_confidence"
)

// MatchedPair is one entry of the pre-matched input produced by the
// upstream matcher. Similarity and Confidence are optional annotations;
// RestaurantName is the Jakarta-side display name carried by the
// comprehensive match file when present.
type MatchedPair struct {
	BrandName      string
	BranchName     string
	RestaurantName string
	Lat            float64
	Lon            float64
	Similarity     *float64
	Confidence     *float64
}

// ESBRecord is one row of the full ESB listing.
type ESBRecord struct {
	BrandName  string
	BranchName string
	Lat        float64
	Lon        float64
	City       string
}

// JakartaRecord is one row of the full Jakarta listing.
type JakartaRecord struct {
	RestaurantName string
	Lat            float64
	Lon            float64
	Pricing        string
}

// CategorizedRecord is the uniform output row: a source record annotated
// with its category, color tag, and the identity key used for
// set-membership comparison.
type CategorizedRecord struct {
	IdentityDisplayName string   `json:"identity_display_name"`
	Branch              string   `json:"branch_or_empty"`
	Lat                 float64  `json:"lat"`
	Lon                 float64  `json:"lon"`
	Category            Category `json:"category"`
	Color               Color    `json:"color_tag"`
	IdentityKey         string   `json:"identity_key"`
	Similarity          *float64 `json:"name_similarity,omitempty"`
	Confidence          *float64 `json:"match_confidence,omitempty"`
	City                string   `json:"city_name,omitempty"`
	Pricing             string   `json:"pricing,omitempty"`
}

// DecodeMatched converts a harmonized, coordinate-cleaned dataset into
// typed matched pairs. A missing required column is a SchemaError.
func DecodeMatched(d tabular.Dataset) ([]MatchedPair, error) {
	if err := requireColumns("matched", d, ColBrandName, ColBranchName, ColLatitude, ColLongitude); err != nil {
		return nil, err
	}

	out := make([]MatchedPair, 0, d.Len())
	for _, row := range d.Rows {
		lat, ok := row.Float(ColLatitude)
		if !ok {
			continue
		}
		lon, ok := row.Float(ColLongitude)
		if !ok {
			continue
		}
		brand, _ := row.Get(ColBrandName)
		branch, _ := row.Get(ColBranchName)
		restaurant, _ := row.Get(ColRestaurantName)
		out = append(out, MatchedPair{
			BrandName:      brand,
			BranchName:     branch,
			RestaurantName: restaurant,
			Lat:            lat,
			Lon:            lon,
			Similarity:     unitInterval(row, ColNameSimilarity),
			Confidence:     unitInterval(row, ColMatchConfidence),
		})
	}
	return out, nil
}

// DecodeESB converts a harmonized, coordinate-cleaned dataset into typed
// ESB records. A missing required column is a SchemaError.
func DecodeESB(d tabular.Dataset) ([]ESBRecord, error) {
	if err := requireColumns("esb", d, ColBrandName, ColBranchName, ColLat, ColLon); err != nil {
		return nil, err
	}

	out := make([]ESBRecord, 0, d.Len())
	for _, row := range d.Rows {
		lat, ok := row.Float(ColLat)
		if !ok {
			continue
		}
		lon, ok := row.Float(ColLon)
		if !ok {
			continue
		}
		brand, _ := row.Get(ColBrandName)
		branch, _ := row.Get(ColBranchName)
		city, _ := row.Get(ColCityName)
		out = append(out, ESBRecord{
			BrandName:  brand,
			BranchName: branch,
			Lat:        lat,
			Lon:        lon,
			City:       city,
		})
	}
	return out, nil
}

// DecodeJakarta converts a harmonized, coordinate-cleaned dataset into
// typed Jakarta records. A missing required column is a SchemaError.
func DecodeJakarta(d tabular.Dataset) ([]JakartaRecord, error) {
	if err := requireColumns("jakarta", d, ColRestaurantName, ColLat, ColLon); err != nil {
		return nil, err
	}

	out := make([]JakartaRecord, 0, d.Len())
	for _, row := range d.Rows {
		lat, ok := row.Float(ColLat)
		if !ok {
			continue
		}
		lon, ok := row.Float(ColLon)
		if !ok {
			continue
		}
		name, _ := row.Get(ColRestaurantName)
		pricing, _ := row.Get(ColPricing)
		out = append(out, JakartaRecord{
			RestaurantName: name,
			Lat:            lat,
			Lon:            lon,
			Pricing:        pricing,
		})
	}
	return out, nil
}

// ToDataset converts categorized records into the uniform tabular output
// shape for export.
func ToDataset(records []CategorizedRecord) tabular.Dataset {
	d := tabular.New(
		"identity_display_name", "branch_or_empty", ColLat, ColLon,
		"category", "color_tag",
		ColNameSimilarity, ColMatchConfidence, ColCityName, ColPricing,
	)
	for _, rec := range records {
		row := tabular.Row{
			"identity_display_name": rec.IdentityDisplayName,
			"branch_or_empty":       rec.Branch,
			ColLat:                  strconv.FormatFloat(rec.Lat, 'f', -1, 64),
			ColLon:                  strconv.FormatFloat(rec.Lon, 'f', -1, 64),
			"category":              rec.Category.String(),
			"color_tag":             rec.Color.String(),
			ColCityName:             rec.City,
			ColPricing:              rec.Pricing,
		}
		if rec.Similarity != nil {
			row[ColNameSimilarity] = strconv.FormatFloat(*rec.Similarity, 'f', -1, 64)
		}
		if rec.Confidence != nil {
			row[ColMatchConfidence] = strconv.FormatFloat(*rec.Confidence, 'f', -1, 64)
		}
		d.Append(row)
	}
	return d
}

// String formats the color as an RGBA tuple.
func (c Color) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", c[0], c[1], c[2], c[3])
}

// requireColumns checks that the dataset declares every required column.
func requireColumns(dataset string, d tabular.Dataset, columns ...string) error {
	for _, col := range columns {
		if !d.HasColumn(col) {
			return errors.NewSchemaError(dataset, col)
		}
	}
	return nil
}

// unitInterval parses an optional score column, keeping only values that
// parse as floats. Out-of-range scores are kept as-is: the upstream
// matcher owns their semantics.
func unitInterval(row tabular.Row, column string) *float64 {
	f, ok := row.Float(column)
	if !ok {
		return nil
	}
	return &f
}
