package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abtest-sim/abtest-sim/abtest"
	"github.com/abtest-sim/abtest-sim/abtest/chart"
)

var (
	// CLI flags shared by the run and replicate commands
	seed              int64  // Seed for random data generation
	logLevel          string // Log verbosity level
	scenariosFilePath string // Path to the scenario presets file
	scenarioName      string // Named preset from the scenarios file

	unitsPerGroup  int     // Units simulated per group
	controlPreMean float64 // Control pre-period KPI mean
	controlPreStd  float64 // Control pre-period KPI stdev
	controlIncMean float64 // Control post-period increment mean
	controlIncStd  float64 // Control post-period increment stdev
	testPreMean    float64 // Test pre-period KPI mean
	testPreStd     float64 // Test pre-period KPI stdev
	testIncMean    float64 // Test post-period increment mean
	testIncStd     float64 // Test post-period increment stdev

	// run-only output flags
	plotOutPath string // Chart output path ("" disables the chart)
	dataOutPath string // Dataset CSV output path ("" disables the dump)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "abtest-sim",
	Short: "Estimator comparison for biased two-group experiments",
}

// runCmd simulates one experiment and prints the comparison table
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one experiment and compare the four estimators",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildSimConfig(cmd)
		logrus.Infof("Starting simulation: n=%d per group, seed=%d, pre-bias=%.2f, true effect=%.2f",
			cfg.N, seed, cfg.PreBias(), cfg.TrueEffect())

		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		sim := abtest.NewSimulator(cfg, abtest.NewExperimentKey(seed))
		dataset := sim.Generate()

		analysis, err := abtest.Analyze(cfg, dataset)
		if err != nil {
			logrus.Fatalf("Analysis failed: %v", err)
		}
		analysis.Print()

		if dataOutPath != "" {
			writeDataset(dataset, dataOutPath)
		}
		if plotOutPath != "" {
			if err := chart.Render(analysis.Estimates, plotOutPath); err != nil {
				logrus.Fatalf("Chart rendering failed: %v", err)
			}
			logrus.Infof("Chart written to %s", plotOutPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildSimConfig resolves the effective configuration: defaults, then the
// named scenario preset if one was requested, then explicit flag overrides.
func buildSimConfig(cmd *cobra.Command) abtest.SimConfig {
	cfg := abtest.DefaultSimConfig()

	if scenarioName != "" {
		preset, err := GetScenario(scenariosFilePath, scenarioName)
		if err != nil {
			logrus.Fatalf("Failed to load scenario %q: %v", scenarioName, err)
		}
		cfg = preset
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = unitsPerGroup
	}
	if flags.Changed("control-pre-mean") {
		cfg.Control.PreMean = controlPreMean
	}
	if flags.Changed("control-pre-std") {
		cfg.Control.PreStd = controlPreStd
	}
	if flags.Changed("control-increment-mean") {
		cfg.Control.IncrementMean = controlIncMean
	}
	if flags.Changed("control-increment-std") {
		cfg.Control.IncrementStd = controlIncStd
	}
	if flags.Changed("test-pre-mean") {
		cfg.Test.PreMean = testPreMean
	}
	if flags.Changed("test-pre-std") {
		cfg.Test.PreStd = testPreStd
	}
	if flags.Changed("test-increment-mean") {
		cfg.Test.IncrementMean = testIncMean
	}
	if flags.Changed("test-increment-std") {
		cfg.Test.IncrementStd = testIncStd
	}
	return cfg
}

// writeDataset dumps the simulated observations to a CSV file
func writeDataset(ds abtest.Dataset, path string) {
	file, err := os.Create(path)
	if err != nil {
		logrus.Fatalf("Failed to create dataset file %s: %v", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Fatalf("Failed to close dataset file %s: %v", path, closeErr)
		}
	}()

	if err := ds.WriteCSV(file); err != nil {
		logrus.Fatalf("Failed to write dataset CSV: %v", err)
	}
	logrus.Infof("Dataset written to %s", path)
}

// addSimFlags registers the simulation parameter flags on a command. The
// defaults mirror abtest.DefaultSimConfig.
func addSimFlags(c *cobra.Command) {
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for random data generation")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&scenariosFilePath, "scenarios-file", "scenarios.yaml", "Path to the scenario presets file")
	c.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (overridden by explicit flags)")

	c.Flags().IntVar(&unitsPerGroup, "n", 1000, "Number of units per group")
	c.Flags().Float64Var(&controlPreMean, "control-pre-mean", 100, "Control group pre-period KPI mean")
	c.Flags().Float64Var(&controlPreStd, "control-pre-std", 15, "Control group pre-period KPI stdev")
	c.Flags().Float64Var(&controlIncMean, "control-increment-mean", 2, "Control group post-period increment mean")
	c.Flags().Float64Var(&controlIncStd, "control-increment-std", 10, "Control group post-period increment stdev")
	c.Flags().Float64Var(&testPreMean, "test-pre-mean", 105, "Test group pre-period KPI mean")
	c.Flags().Float64Var(&testPreStd, "test-pre-std", 15, "Test group pre-period KPI stdev")
	c.Flags().Float64Var(&testIncMean, "test-increment-mean", 5, "Test group post-period increment mean")
	c.Flags().Float64Var(&testIncStd, "test-increment-std", 10, "Test group post-period increment stdev")
}

// init sets up CLI flags and subcommands
func init() {
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&plotOutPath, "plot-out", "effect_comparison.png", "Chart output path (.png or .svg, empty to skip)")
	runCmd.Flags().StringVar(&dataOutPath, "data-out", "", "Dataset CSV output path (empty to skip)")

	rootCmd.AddCommand(runCmd)
}
