// Package abtest simulates two-group pre/post experiments with a
// configurable pre-existing bias and compares four treatment-effect
// estimators on the result.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - simulate.go: dataset generation (seeded, per-subsystem RNG isolation)
//   - estimate.go, did.go, regression.go: the four estimators
//   - analysis.go: Run() ties simulation and estimation together
//
// # Estimators
//
// The four strategies, in fixed presentation order:
//   - Naive: post-period mean difference, biased by any pre-period imbalance
//   - Manual Correction: naive minus the observed pre-bias, point estimate only
//   - DiD: difference-in-differences with a normal-approximation 95% CI
//   - Regression: OLS post ~ 1 + group + pre with classical t-based inference
//
// # Determinism
//
// Every random draw goes through a PartitionedRNG keyed by an ExperimentKey
// (rng.go). A given configuration and key reproduce the dataset, and thus
// all four estimates, bit for bit. Replication studies (replicate.go) derive
// an isolated key per replication.
package abtest
