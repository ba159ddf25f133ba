// Package constants provides shared constants used throughout the restomap
// codebase. This includes file permissions, ranking limits, and other
// configuration values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Ranking and formatting constants
const (
	// DefaultTopN is the default size of the top-identity ranking in summaries
	DefaultTopN = 15

	// PercentPrecision is the number of decimal places used for percentage output
	PercentPrecision = 2
)
