// Package constants provides shared constants used throughout the wdsquery
// codebase: timeouts, default thresholds, file layout and permissions.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the timeout for a single Simbad request
	DefaultHTTPTimeout = 5 * time.Second

	// SimbadQueryDelay is the minimum delay between two network requests to Simbad
	SimbadQueryDelay = 1500 * time.Millisecond

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog constants
const (
	// DefaultMaxMagDiff is the default largest mag2-mag1 kept by the negative filter
	DefaultMaxMagDiff = 3.0

	// DefaultFilterPolicy is the policy used when none is configured
	DefaultFilterPolicy = "negative"

	// ImpliedLabel is the component label WDS omits for simple pairs
	ImpliedLabel = "AB"

	// SimbadIDPrefix starts every Simbad-style WDS identifier
	SimbadIDPrefix = "J"

	// SystemIDLength is the length of a bare WDS id such as 14396-6050
	SystemIDLength = 10

	// FixedWidthLineLength is the length of a WDS ASCII record without its newline
	FixedWidthLineLength = 130
)

// Simbad service constants
const (
	// DefaultSimbadURL is the sim-id endpoint queried for ASCII records
	DefaultSimbadURL = "http://simbad.u-strasbg.fr/simbad/sim-id"

	// DefaultCacheDir holds raw Simbad responses between runs
	DefaultCacheDir = "Simbad"

	// CacheFileSuffix is appended to cached response file names
	CacheFileSuffix = ".simbad_id"

	// MemoryCacheTTL is how long a fetched response stays in the in-process cache
	MemoryCacheTTL = 30 * time.Minute

	// MemoryCacheCleanup is how often expired in-process entries are evicted
	MemoryCacheCleanup = 10 * time.Minute
)

// Input defaults
const (
	// DefaultNameColumn is the star list column holding object names
	DefaultNameColumn = "Star"

	// DefaultAliasFile maps problematic names to identifiers Simbad accepts
	DefaultAliasFile = "simbad_star_alias.csv"

	// ConfigFileName is the base name of the optional YAML config file
	ConfigFileName = ".wdsquery"

	// EnvPrefix prefixes environment variables read through viper
	EnvPrefix = "WDSQUERY"
)
