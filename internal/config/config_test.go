package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultResolution, cfg.Pipeline.DefaultResolution)
	assert.Equal(t, 0, cfg.Pipeline.Workers, "workers default stays 0 (one per CPU)")
	assert.Equal(t, DefaultPostGISTable, cfg.PostGIS.Table)
	assert.Equal(t, DefaultPostGISGeometryColumn, cfg.PostGIS.GeometryColumn)
	assert.Equal(t, DefaultPostGISSRID, cfg.PostGIS.SRID)
	assert.Equal(t, DefaultPostGISQueryTimeout, cfg.PostGIS.QueryTimeout)
}

func TestApplyDefaults_ExplicitValuesWin(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Log:      LogConfig{Level: "debug", Format: "json"},
		Pipeline: PipelineConfig{DefaultResolution: 7, Workers: 4},
		PostGIS:  PostGISConfig{Table: "gvi_points", GeometryColumn: "geometry", QueryTimeout: time.Minute},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 7, cfg.Pipeline.DefaultResolution)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, "gvi_points", cfg.PostGIS.Table)
}

func TestApplyDefaults_NilIsSafe(t *testing.T) {
	t.Parallel()

	ApplyDefaults(nil)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().Validate())
}

func TestValidate_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"resolution too fine", func(c *Config) { c.Pipeline.DefaultResolution = 16 }},
		{"resolution negative", func(c *Config) { c.Pipeline.DefaultResolution = -1 }},
		{"negative workers", func(c *Config) { c.Pipeline.Workers = -2 }},
		{"empty table", func(c *Config) { c.PostGIS.Table = "" }},
		{"empty geometry column", func(c *Config) { c.PostGIS.GeometryColumn = "" }},
		{"negative srid", func(c *Config) { c.PostGIS.SRID = -1 }},
		{"zero query timeout", func(c *Config) { c.PostGIS.QueryTimeout = 0 }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
