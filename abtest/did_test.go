package abtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestDiD_HandComputed(t *testing.T) {
	ds := handDataset()
	e := DiD(ds)

	// control diffs all 2, test diffs all 5: effect 3 with zero spread
	assert.InDelta(t, 3, e.Effect, 1e-12)
	assert.InDelta(t, 0, e.SE, 1e-12)
	assert.True(t, e.HasCI)
	assert.Equal(t, MethodDiD, e.Method)
	assert.Equal(t, "via DiD test", e.Reliability)
}

func TestDiD_MatchesDiffOfMeanDiffs(t *testing.T) {
	ds := NewSimulator(DefaultSimConfig(), NewExperimentKey(42)).Generate()
	e := DiD(ds)

	want := stat.Mean(ds.Test.Diffs(), nil) - stat.Mean(ds.Control.Diffs(), nil)
	assert.Equal(t, want, e.Effect)
}

func TestDiD_EqualsManualForEqualGroups(t *testing.T) {
	// With equal-size groups the DiD point estimate and the manual
	// correction coincide algebraically.
	ds := NewSimulator(DefaultSimConfig(), NewExperimentKey(42)).Generate()
	require.Equal(t, ds.Control.Len(), ds.Test.Len())

	did := DiD(ds)
	manual := ManualAdjusted(ds)

	assert.InDelta(t, manual.Effect, did.Effect, 1e-9)
}

func TestDiD_SECombinesGroups(t *testing.T) {
	ds := NewSimulator(DefaultSimConfig(), NewExperimentKey(42)).Generate()
	e := DiD(ds)

	want := math.Sqrt(ds.Control.DiffSE()*ds.Control.DiffSE() + ds.Test.DiffSE()*ds.Test.DiffSE())
	assert.InDelta(t, want, e.SE, 1e-12)
	assert.Greater(t, e.SE, 0.0)
}

func TestDiD_CISymmetricHalfWidth(t *testing.T) {
	ds := NewSimulator(DefaultSimConfig(), NewExperimentKey(42)).Generate()
	e := DiD(ds)

	assert.InDelta(t, e.Effect-e.CI.Lower, e.CI.Upper-e.Effect, 1e-12)
	assert.InDelta(t, 1.96*e.SE, e.CI.Upper-e.Effect, 1e-12)
}
