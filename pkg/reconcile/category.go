package reconcile

import "slices"

// Category classifies a record by which source comparison produced it.
// The set is closed: no other values are permitted.
type Category string

// String returns the string representation of a category.
func (c Category) String() string {
	return string(c)
}

const (
	// CategoryMatch marks records from the pre-matched input.
	CategoryMatch Category = "Match"
	// CategoryESBOnly marks ESB records whose brand is absent from the matched set.
	CategoryESBOnly Category = "ESB-only"
	// CategoryJakartaOnly marks Jakarta records whose restaurant name is absent from the matched set.
	CategoryJakartaOnly Category = "Jakarta-only"
)

// Categories returns all valid categories.
func Categories() []Category {
	return []Category{CategoryMatch, CategoryESBOnly, CategoryJakartaOnly}
}

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Color is an RGBA color tag attached per category. It is a rendering
// hint produced here and consumed by an external presentation layer.
type Color [4]uint8

// Fixed color tags per category.
var (
	ColorMatch       = Color{0, 255, 0, 180}
	ColorESBOnly     = Color{255, 165, 0, 180}
	ColorJakartaOnly = Color{0, 0, 255, 180}
)

// Color returns the fixed color tag for the category.
func (c Category) Color() Color {
	switch c {
	case CategoryMatch:
		return ColorMatch
	case CategoryESBOnly:
		return ColorESBOnly
	case CategoryJakartaOnly:
		return ColorJakartaOnly
	default:
		return Color{}
	}
}
