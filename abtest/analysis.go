package abtest

import "fmt"

// Analysis bundles the four effect estimates for one simulated experiment,
// in the fixed Methods order.
type Analysis struct {
	Config    SimConfig
	Estimates []EffectEstimate
}

// Analyze runs all four estimators against a dataset. The only error path
// is a degenerate regression fit; the other three estimators are pure
// arithmetic and cannot fail.
func Analyze(cfg SimConfig, ds Dataset) (*Analysis, error) {
	reg, err := Regression(ds)
	if err != nil {
		return nil, fmt.Errorf("regression adjustment: %w", err)
	}

	return &Analysis{
		Config:    cfg,
		Estimates: []EffectEstimate{Naive(ds), ManualAdjusted(ds), DiD(ds), reg},
	}, nil
}

// Estimate returns the estimate for the given method.
func (a *Analysis) Estimate(m Method) (EffectEstimate, bool) {
	for _, e := range a.Estimates {
		if e.Method == m {
			return e, true
		}
	}
	return EffectEstimate{}, false
}

// Run simulates one experiment and analyzes it.
func Run(cfg SimConfig, key ExperimentKey) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ds := NewSimulator(cfg, key).Generate()
	return Analyze(cfg, ds)
}
