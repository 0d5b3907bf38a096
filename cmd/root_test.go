package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abtest-sim/abtest-sim/abtest"
)

// newFlagCommand builds a throwaway command carrying the simulation flags,
// resetting the shared flag variables to their defaults.
func newFlagCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addSimFlags(c)
	return c
}

func TestBuildSimConfig_Defaults(t *testing.T) {
	c := newFlagCommand()

	cfg := buildSimConfig(c)

	assert.Equal(t, abtest.DefaultSimConfig(), cfg)
}

func TestBuildSimConfig_FlagOverrides(t *testing.T) {
	c := newFlagCommand()
	require.NoError(t, c.Flags().Set("n", "500"))
	require.NoError(t, c.Flags().Set("test-pre-mean", "100"))
	require.NoError(t, c.Flags().Set("control-increment-std", "4"))

	cfg := buildSimConfig(c)

	assert.Equal(t, 500, cfg.N)
	assert.Equal(t, 100.0, cfg.Test.PreMean)
	assert.Equal(t, 4.0, cfg.Control.IncrementStd)
	// Untouched fields keep their defaults
	assert.Equal(t, 15.0, cfg.Test.PreStd)
	assert.Equal(t, 0.0, cfg.PreBias())
}

func TestBuildSimConfig_ScenarioWithOverride(t *testing.T) {
	c := newFlagCommand()
	require.NoError(t, c.Flags().Set("scenarios-file", "../scenarios.yaml"))
	require.NoError(t, c.Flags().Set("scenario", "no-bias"))
	require.NoError(t, c.Flags().Set("n", "50"))

	cfg := buildSimConfig(c)

	// Preset applies first, explicit flags win
	assert.Equal(t, 50, cfg.N)
	assert.Equal(t, 0.0, cfg.PreBias())
	assert.Equal(t, 3.0, cfg.TrueEffect())
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["run"])
	assert.True(t, names["replicate"])
}
