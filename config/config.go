// Package config loads housecraft's runtime configuration: data file
// locations, worker counts for the two solve paths, the output
// directory, and the log level. Values come from a YAML file with
// environment-variable overrides, following the same viper setup the
// retrieved corpus uses for its own service configuration.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every externally-tunable setting housecraft reads at
// startup.
type Config struct {
	Data struct {
		Dir           string `mapstructure:"dir"`
		CharacterCSV  string `mapstructure:"character_csv"`
		NodeCSV       string `mapstructure:"node_csv"`
		RegionCSV     string `mapstructure:"region_csv"`
		BuildingsJSON string `mapstructure:"buildings_json"`
	} `mapstructure:"data"`

	Generate struct {
		Workers         int      `mapstructure:"workers"`
		ExcludedRegions []string `mapstructure:"excluded_regions"`
	} `mapstructure:"generate"`

	Optimize struct {
		Workers int `mapstructure:"workers"`
	} `mapstructure:"optimize"`

	Output struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"output"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads configuration from path (a YAML file). A missing file at
// path falls back to defaults, matching the retrieved corpus's config
// loader; a file that exists but cannot be parsed is an error. Any
// setting can be overridden by an environment variable prefixed
// HOUSECRAFT_ followed by the upper-cased key path, with "." kept as
// is (e.g. HOUSECRAFT_LOG.LEVEL); no key replacer is configured.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HOUSECRAFT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// With SetConfigFile, a missing file surfaces as a plain
			// path error rather than ConfigFileNotFoundError, so decide
			// by whether the file exists.
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "./data/housecraft/input")
	v.SetDefault("data.character_csv", "characters.csv")
	v.SetDefault("data.node_csv", "nodes.csv")
	v.SetDefault("data.region_csv", "regions.csv")
	v.SetDefault("data.buildings_json", "buildings.json")

	v.SetDefault("generate.workers", 8)
	v.SetDefault("generate.excluded_regions", []string{})

	v.SetDefault("optimize.workers", 8)

	v.SetDefault("output.dir", "./data/housecraft")

	v.SetDefault("log.level", "info")
}

// IsExcluded reports whether region is on the configured exhaustive-
// generation exclusion list.
func (c *Config) IsExcluded(region string) bool {
	for _, r := range c.Generate.ExcludedRegions {
		if r == region {
			return true
		}
	}
	return false
}
