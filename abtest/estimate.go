package abtest

// Method identifies one treatment-effect estimation strategy.
type Method string

const (
	// MethodNaive compares post-period means with no adjustment.
	MethodNaive Method = "Naive"

	// MethodManual subtracts the observed pre-period mean difference from
	// the naive estimate.
	MethodManual Method = "Manual Correction"

	// MethodDiD is the difference-in-differences estimator.
	MethodDiD Method = "DiD"

	// MethodRegression is the covariate-adjusted OLS estimator.
	MethodRegression Method = "Regression"
)

// Methods lists all estimators in fixed presentation order. The summary
// table and the comparison chart both follow this order.
var Methods = []Method{MethodNaive, MethodManual, MethodDiD, MethodRegression}

// NotReliable is the reliability annotation for estimators that carry no
// valid inference procedure.
const NotReliable = "not reliable"

// ConfidenceInterval is a two-sided 95% interval for an effect estimate.
type ConfidenceInterval struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies inside the interval.
func (ci ConfidenceInterval) Contains(v float64) bool {
	return v >= ci.Lower && v <= ci.Upper
}

// EffectEstimate is the outcome of one estimator on one dataset.
// SE, CI, and PValue are meaningful only when the corresponding Has* flag
// is set; the naive and manually-corrected estimators produce point
// estimates only.
type EffectEstimate struct {
	Method      Method
	Effect      float64
	SE          float64
	CI          ConfidenceInterval
	HasCI       bool
	PValue      float64
	HasPValue   bool
	Reliability string // annotation shown in the summary table
}

// Naive estimates the effect as mean(test.post) − mean(control.post).
// It ignores pre-period imbalance entirely: whenever the arms differ before
// treatment, the estimate is biased by exactly that difference.
func Naive(ds Dataset) EffectEstimate {
	return EffectEstimate{
		Method:      MethodNaive,
		Effect:      ds.Test.PostMean() - ds.Control.PostMean(),
		Reliability: NotReliable,
	}
}

// ManualAdjusted subtracts the observed pre-period mean difference from the
// naive estimate. The point estimate is unbiased when the pre-bias is a
// constant additive shift, but no standard error accompanies it: differencing
// two noisy estimates without a matching inference procedure understates
// uncertainty, so the result is still flagged unreliable.
func ManualAdjusted(ds Dataset) EffectEstimate {
	naive := Naive(ds)
	return EffectEstimate{
		Method:      MethodManual,
		Effect:      naive.Effect - ds.PreBias(),
		Reliability: NotReliable,
	}
}
