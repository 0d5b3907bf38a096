package abtest

import "fmt"

// GroupParams groups one arm's generating distributions. The pre-period KPI
// is drawn from N(PreMean, PreStd²); the post-period KPI is the pre draw
// plus an independent increment drawn from N(IncrementMean, IncrementStd²).
type GroupParams struct {
	PreMean       float64 // pre-period KPI mean
	PreStd        float64 // pre-period KPI standard deviation (must be >= 0)
	IncrementMean float64 // mean post-period change
	IncrementStd  float64 // standard deviation of the post-period change (must be >= 0)
}

// NewGroupParams constructs a GroupParams.
func NewGroupParams(preMean, preStd, incMean, incStd float64) GroupParams {
	return GroupParams{
		PreMean:       preMean,
		PreStd:        preStd,
		IncrementMean: incMean,
		IncrementStd:  incStd,
	}
}

// SimConfig groups simulation parameters for NewSimulator.
type SimConfig struct {
	N       int         // units per group (must be > 0)
	Control GroupParams // control arm
	Test    GroupParams // test arm
}

// NewSimConfig constructs a SimConfig.
func NewSimConfig(n int, control, test GroupParams) SimConfig {
	return SimConfig{N: n, Control: control, Test: test}
}

// DefaultSimConfig returns the baseline scenario: 1000 units per group,
// control pre ~ N(100,15²), test pre ~ N(105,15²) (pre-bias of 5), control
// increment ~ N(2,10²), test increment ~ N(5,10²) (true effect of 3).
func DefaultSimConfig() SimConfig {
	return SimConfig{
		N:       1000,
		Control: NewGroupParams(100, 15, 2, 10),
		Test:    NewGroupParams(105, 15, 5, 10),
	}
}

// TrueEffect returns the injected treatment effect, the difference between
// the two arms' increment means.
func (c SimConfig) TrueEffect() float64 {
	return c.Test.IncrementMean - c.Control.IncrementMean
}

// PreBias returns the injected pre-period imbalance between the arms.
func (c SimConfig) PreBias() float64 {
	return c.Test.PreMean - c.Control.PreMean
}

// Validate reports the first invalid field, or nil.
func (c SimConfig) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("units per group must be positive, got %d", c.N)
	}
	for _, g := range []struct {
		name   string
		params GroupParams
	}{{"control", c.Control}, {"test", c.Test}} {
		if g.params.PreStd < 0 {
			return fmt.Errorf("%s pre std must be non-negative, got %v", g.name, g.params.PreStd)
		}
		if g.params.IncrementStd < 0 {
			return fmt.Errorf("%s increment std must be non-negative, got %v", g.name, g.params.IncrementStd)
		}
	}
	return nil
}
