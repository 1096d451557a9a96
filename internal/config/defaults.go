package config

import "time"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	// DefaultResolution matches the reference tool's default cell
	// resolution.
	DefaultResolution = 10

	DefaultPostGISTable          = "points"
	DefaultPostGISGeometryColumn = "geom"
	DefaultPostGISSRID           = 4326
	DefaultPostGISQueryTimeout   = 30 * time.Second
)

// defaultSettings maps every configuration key to its default value. The
// loader registers the full key set with viper; keys viper does not know
// about are invisible to Unmarshal even when set in the environment.
func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"log.level":                   DefaultLogLevel,
		"log.format":                  DefaultLogFormat,
		"pipeline.default_resolution": DefaultResolution,
		"pipeline.workers":            0,
		"postgis.table":               DefaultPostGISTable,
		"postgis.geometry_column":     DefaultPostGISGeometryColumn,
		"postgis.srid":                DefaultPostGISSRID,
		"postgis.query_timeout":       DefaultPostGISQueryTimeout,
	}
}

// ApplyDefaults fills every zero-value field in cfg with the tool default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins. It must run after unmarshalling and before
// Validate so that optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// Resolution 0 is a valid (coarsest) cell resolution but is
	// indistinguishable from unset here; callers wanting resolution 0 pass
	// it as the CELL_RESOLUTION argument instead.
	if cfg.Pipeline.DefaultResolution == 0 {
		cfg.Pipeline.DefaultResolution = DefaultResolution
	}

	if cfg.PostGIS.Table == "" {
		cfg.PostGIS.Table = DefaultPostGISTable
	}
	if cfg.PostGIS.GeometryColumn == "" {
		cfg.PostGIS.GeometryColumn = DefaultPostGISGeometryColumn
	}
	if cfg.PostGIS.SRID == 0 {
		cfg.PostGIS.SRID = DefaultPostGISSRID
	}
	if cfg.PostGIS.QueryTimeout == 0 {
		cfg.PostGIS.QueryTimeout = DefaultPostGISQueryTimeout
	}
}
