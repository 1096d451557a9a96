package config

import (
	"fmt"
	"time"

	"github.com/turtacn/hexmean/pkg/types/geo"
)

// LogConfig holds logging tunables.
type LogConfig struct {
	// Level controls the minimum severity that will be emitted.
	// Accepted values: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`

	// Format selects the output encoding: "console" for human-readable
	// output, "json" for log aggregation pipelines.
	Format string `mapstructure:"format"`
}

// PipelineConfig holds aggregation pipeline tunables.
type PipelineConfig struct {
	// DefaultResolution is the cell resolution used when the caller omits
	// the CELL_RESOLUTION argument. Must be within [0, 15].
	DefaultResolution int `mapstructure:"default_resolution"`

	// Workers bounds the cell-assignment worker pool. Zero means one
	// worker per CPU.
	Workers int `mapstructure:"workers"`
}

// PostGISConfig holds options for reading point features from a PostGIS
// table when the input argument is a postgres:// DSN. Connection parameters
// live in the DSN itself; only table-shape options belong here.
type PostGISConfig struct {
	// Table is the relation to read point features from.
	Table string `mapstructure:"table"`

	// GeometryColumn is the geometry column within Table.
	GeometryColumn string `mapstructure:"geometry_column"`

	// SRID is the spatial reference of GeometryColumn. Geometries in any
	// other reference system are transformed to EPSG:4326 on read.
	SRID int `mapstructure:"srid"`

	// QueryTimeout bounds the feature-loading query.
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// Config is the root configuration object.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	PostGIS  PostGISConfig  `mapstructure:"postgis"`
}

// Validate checks cross-field consistency. It assumes ApplyDefaults has
// already run, so empty-but-defaulted fields never appear here.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log.level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log.format %q", c.Log.Format)
	}

	if !geo.ValidResolution(c.Pipeline.DefaultResolution) {
		return fmt.Errorf("config: pipeline.default_resolution must be between %d and %d, got %d",
			geo.MinResolution, geo.MaxResolution, c.Pipeline.DefaultResolution)
	}

	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("config: pipeline.workers must not be negative, got %d", c.Pipeline.Workers)
	}

	if c.PostGIS.Table == "" {
		return fmt.Errorf("config: postgis.table must not be empty")
	}
	if c.PostGIS.GeometryColumn == "" {
		return fmt.Errorf("config: postgis.geometry_column must not be empty")
	}
	if c.PostGIS.SRID <= 0 {
		return fmt.Errorf("config: postgis.srid must be positive, got %d", c.PostGIS.SRID)
	}
	if c.PostGIS.QueryTimeout <= 0 {
		return fmt.Errorf("config: postgis.query_timeout must be positive, got %s", c.PostGIS.QueryTimeout)
	}

	return nil
}
