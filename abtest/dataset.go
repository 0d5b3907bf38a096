package abtest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// GroupData holds one arm's observed KPI values. Pre and Post are parallel
// slices: Pre[i] and Post[i] belong to the same unit.
type GroupData struct {
	Pre  []float64
	Post []float64
}

// Len returns the number of units in the group.
func (g GroupData) Len() int {
	return len(g.Pre)
}

// Diffs returns the per-unit change post − pre, the quantity the
// difference-in-differences estimator averages.
func (g GroupData) Diffs() []float64 {
	d := make([]float64, len(g.Pre))
	for i := range g.Pre {
		d[i] = g.Post[i] - g.Pre[i]
	}
	return d
}

// PreMean returns the group's pre-period sample mean.
func (g GroupData) PreMean() float64 {
	return stat.Mean(g.Pre, nil)
}

// PostMean returns the group's post-period sample mean.
func (g GroupData) PostMean() float64 {
	return stat.Mean(g.Post, nil)
}

// DiffSE returns the standard error of the group's mean per-unit change:
// sample standard deviation of the diffs divided by sqrt(group size).
func (g GroupData) DiffSE() float64 {
	d := g.Diffs()
	return stat.StdDev(d, nil) / math.Sqrt(float64(len(d)))
}

// Dataset is one simulated experiment: a control arm and a test arm.
type Dataset struct {
	Control GroupData
	Test    GroupData
}

// PreBias returns the observed pre-period imbalance,
// mean(test.pre) − mean(control.pre).
func (ds Dataset) PreBias() float64 {
	return ds.Test.PreMean() - ds.Control.PreMean()
}
