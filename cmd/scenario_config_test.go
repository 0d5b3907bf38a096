package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abtest-sim/abtest-sim/abtest"
)

func TestLoadScenarios_RepoPresets(t *testing.T) {
	file, err := LoadScenarios("../scenarios.yaml")
	require.NoError(t, err)

	assert.Equal(t, "1", file.Version)
	for _, name := range []string{"baseline", "no-bias", "null-effect"} {
		_, ok := file.Scenarios[name]
		assert.True(t, ok, "missing scenario %s", name)
	}
}

func TestGetScenario_Baseline(t *testing.T) {
	cfg, err := GetScenario("../scenarios.yaml", "baseline")
	require.NoError(t, err)

	// The baseline preset mirrors the built-in defaults
	assert.Equal(t, abtest.DefaultSimConfig(), cfg)
}

func TestGetScenario_NoBiasHasZeroPreBias(t *testing.T) {
	cfg, err := GetScenario("../scenarios.yaml", "no-bias")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.PreBias())
	assert.Equal(t, 3.0, cfg.TrueEffect())
}

func TestGetScenario_UnknownName(t *testing.T) {
	_, err := GetScenario("../scenarios.yaml", "nonexistent")
	assert.Error(t, err)
}

func TestLoadScenarios_StrictParsing(t *testing.T) {
	// Unknown fields must fail loudly so typos don't silently fall back to
	// zero values.
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := `version: "1"
scenarios:
  typo:
    n: 100
    control:
      pre_mean: 100
      pre_stdev: 15
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := LoadScenarios(path)
	assert.Error(t, err)
}

func TestLoadScenarios_MissingFile(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
