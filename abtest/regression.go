package abtest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RegressionResult holds the fitted OLS adjustment model
// post_kpi ~ 1 + group + pre_kpi, with group = 1 for the test arm.
// Coefficient order is intercept, group, pre. Inference uses classical
// (homoskedastic) OLS standard errors: Var(β̂) = σ̂²(XᵀX)⁻¹ with
// σ̂² = RSS/(n−p), and t-distribution tails with n−p degrees of freedom.
type RegressionResult struct {
	Coefficients []float64 // β̂: intercept, group, pre
	StdErrs      []float64 // classical OLS standard errors
	TStats       []float64 // β̂ / SE
	PValues      []float64 // two-sided, t with DOF degrees of freedom
	DOF          int       // n − p
	Sigma2       float64   // estimated residual variance
}

const (
	regressionTerms = 3 // intercept, group indicator, pre covariate
	groupCoeffIndex = 1
)

// FitAdjustment fits the covariate-adjustment OLS model to a dataset.
// Returns an error when the design matrix is rank deficient (e.g. a
// degenerate dataset with a constant pre covariate equal to the group
// indicator); there is no recovery path, the caller decides how to fail.
func FitAdjustment(ds Dataset) (*RegressionResult, error) {
	n := ds.Control.Len() + ds.Test.Len()
	if n <= regressionTerms {
		return nil, fmt.Errorf("need more than %d observations to fit, got %d", regressionTerms, n)
	}

	X := mat.NewDense(n, regressionTerms, nil)
	y := mat.NewVecDense(n, nil)

	row := 0
	for _, arm := range []struct {
		data  GroupData
		group float64
	}{{ds.Control, 0}, {ds.Test, 1}} {
		for i := 0; i < arm.data.Len(); i++ {
			X.Set(row, 0, 1)
			X.Set(row, 1, arm.group)
			X.Set(row, 2, arm.data.Pre[i])
			y.SetVec(row, arm.data.Post[i])
			row++
		}
	}

	var beta mat.VecDense
	if err := beta.SolveVec(X, y); err != nil {
		return nil, fmt.Errorf("singular design matrix: %w", err)
	}

	// Residual variance from the fitted values.
	var fitted mat.VecDense
	fitted.MulVec(X, &beta)
	rss := 0.0
	for i := 0; i < n; i++ {
		r := y.AtVec(i) - fitted.AtVec(i)
		rss += r * r
	}
	dof := n - regressionTerms
	sigma2 := rss / float64(dof)

	// Classical covariance: σ̂²(XᵀX)⁻¹.
	var xtx, xtxInv mat.Dense
	xtx.Mul(X.T(), X)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("singular design matrix: %w", err)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}

	res := &RegressionResult{
		Coefficients: make([]float64, regressionTerms),
		StdErrs:      make([]float64, regressionTerms),
		TStats:       make([]float64, regressionTerms),
		PValues:      make([]float64, regressionTerms),
		DOF:          dof,
		Sigma2:       sigma2,
	}
	for j := 0; j < regressionTerms; j++ {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		res.Coefficients[j] = b
		res.StdErrs[j] = se
		res.TStats[j] = b / se
		res.PValues[j] = 2 * tDist.CDF(-math.Abs(b/se))
	}
	return res, nil
}

// Regression estimates the treatment effect as the group coefficient of the
// covariate-adjustment model. Because the model controls for the continuous
// pre covariate rather than only a group-mean difference, it stays valid
// even when the pre-bias is not a pure mean shift.
func Regression(ds Dataset) (EffectEstimate, error) {
	fit, err := FitAdjustment(ds)
	if err != nil {
		return EffectEstimate{}, err
	}

	effect := fit.Coefficients[groupCoeffIndex]
	se := fit.StdErrs[groupCoeffIndex]
	p := fit.PValues[groupCoeffIndex]

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(fit.DOF)}
	tCrit := tDist.Quantile(0.975)

	return EffectEstimate{
		Method: MethodRegression,
		Effect: effect,
		SE:     se,
		CI: ConfidenceInterval{
			Lower: effect - tCrit*se,
			Upper: effect + tCrit*se,
		},
		HasCI:       true,
		PValue:      p,
		HasPValue:   true,
		Reliability: fmt.Sprintf("p=%.4f", p),
	}, nil
}
