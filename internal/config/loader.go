// Package config provides configuration loading, defaults, and validation
// for hexmean.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "HEXMEAN"

// newViper builds a pre-configured Viper instance with the tool's standard
// settings: YAML file type, HEXMEAN_ env prefix, automatic env binding, and
// a key replacer that maps "." to "_" so that nested keys like
// "pipeline.workers" resolve to "HEXMEAN_PIPELINE_WORKERS".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only visits keys viper already knows about, so every
	// settable key must be registered here or env-only overrides are
	// silently dropped.
	for key, def := range defaultSettings() {
		v.SetDefault(key, def)
	}
	return v
}

// Load reads the YAML file at configPath, merges any HEXMEAN_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result. It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from HEXMEAN_* environment variables
// and defaults, with no config file required. This is the normal path: the
// tool runs without a config file unless --config is given.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
