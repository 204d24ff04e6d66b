package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brynhall/housecraft/config"
)

func TestLoad_DefaultsWhenNoPathGiven(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "./data/housecraft/input", cfg.Data.Dir)
	require.Equal(t, "characters.csv", cfg.Data.CharacterCSV)
	require.Equal(t, 8, cfg.Generate.Workers)
	require.Empty(t, cfg.Generate.ExcludedRegions)
	require.Equal(t, 8, cfg.Optimize.Workers)
	require.Equal(t, "./data/housecraft", cfg.Output.Dir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Generate.Workers)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "housecraft.yaml")
	const body = `
data:
  dir: /srv/housecraft/input
generate:
  workers: 3
  excluded_regions: ["Ashfield", "Brynhall"]
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/housecraft/input", cfg.Data.Dir)
	require.Equal(t, 3, cfg.Generate.Workers)
	require.Equal(t, []string{"Ashfield", "Brynhall"}, cfg.Generate.ExcludedRegions)
	require.Equal(t, "debug", cfg.Log.Level)
	// Untouched sections keep their defaults.
	require.Equal(t, 8, cfg.Optimize.Workers)
}

func TestLoad_PresentButUnparseableFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "housecraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

// AutomaticEnv binds HOUSECRAFT_-prefixed environment variables over
// both defaults and file values, keyed by the mapstructure path with
// "." preserved (no key replacer is configured).
func TestLoad_EnvironmentVariableOverridesFileValue(t *testing.T) {
	t.Setenv("HOUSECRAFT_LOG.LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "housecraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestIsExcluded(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generate.ExcludedRegions = []string{"Ashfield", "Brynhall"}

	require.True(t, cfg.IsExcluded("Brynhall"))
	require.False(t, cfg.IsExcluded("Carrowmere"))
}

func TestIsExcluded_EmptyListExcludesNothing(t *testing.T) {
	cfg := &config.Config{}
	require.False(t, cfg.IsExcluded("anything"))
}
