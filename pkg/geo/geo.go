// Package geo provides coordinate validation against absolute geodetic
// limits and a configurable region bounding box. Validation is a pure
// predicate: it never mutates state and is total over all numeric and
// missing inputs.
package geo

// Absolute geodetic limits. Coordinates outside these are invalid
// regardless of the configured region bounds.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Bounds is a latitude/longitude rectangle used as a sanity filter
// for a target metropolitan area.
type Bounds struct {
	MinLat float64 `json:"min_lat" yaml:"min_lat" mapstructure:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat" mapstructure:"max_lat"`
	MinLon float64 `json:"min_lon" yaml:"min_lon" mapstructure:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon" mapstructure:"max_lon"`
}

// JakartaBounds is the default bounding box for the Jakarta metropolitan area.
func JakartaBounds() Bounds {
	return Bounds{
		MinLat: -6.45,
		MaxLat: -6.08,
		MinLon: 106.60,
		MaxLon: 107.10,
	}
}

// Contains reports whether the point lies inside the bounds, inclusive.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// IsValid reports whether the bounds describe a non-empty rectangle
// within the absolute geodetic limits.
func (b Bounds) IsValid() bool {
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return false
	}
	return b.MinLat >= MinLatitude && b.MaxLat <= MaxLatitude &&
		b.MinLon >= MinLongitude && b.MaxLon <= MaxLongitude
}

// Validator validates coordinate pairs against the absolute geodetic
// limits and a region bounding box.
type Validator struct {
	Bounds Bounds
}

// NewValidator creates a Validator for the given region bounds.
func NewValidator(bounds Bounds) Validator {
	return Validator{Bounds: bounds}
}

// Validate reports whether the coordinate pair is within the absolute
// geodetic limits and the configured region bounds.
func (v Validator) Validate(lat, lon float64) bool {
	if lat < MinLatitude || lat > MaxLatitude || lon < MinLongitude || lon > MaxLongitude {
		return false
	}
	return v.Bounds.Contains(lat, lon)
}

// ValidatePtr is Validate over possibly-missing values. A nil latitude
// or longitude fails validation.
func (v Validator) ValidatePtr(lat, lon *float64) bool {
	if lat == nil || lon == nil {
		return false
	}
	return v.Validate(*lat, *lon)
}
