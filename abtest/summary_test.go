package abtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary_RowsAndMarkers(t *testing.T) {
	a, err := Run(DefaultSimConfig(), NewExperimentKey(42))
	require.NoError(t, err)

	var b strings.Builder
	a.WriteSummary(&b)
	out := b.String()

	assert.Contains(t, out, "Estimator Comparison")
	assert.Contains(t, out, "True effect (injected)  : 3.00")
	assert.Contains(t, out, "Pre-bias (injected)     : 5.00")

	lines := strings.Split(out, "\n")
	var naiveLine, manualLine, didLine, regLine string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "Naive"):
			naiveLine = l
		case strings.HasPrefix(l, "Manual Correction"):
			manualLine = l
		case strings.HasPrefix(l, "DiD"):
			didLine = l
		case strings.HasPrefix(l, "Regression"):
			regLine = l
		}
	}

	// Unreliable estimators carry the marker and no interval
	assert.Contains(t, naiveLine, NotReliable)
	assert.Contains(t, manualLine, NotReliable)
	assert.NotContains(t, naiveLine, "[")
	assert.NotContains(t, manualLine, "[")

	// DiD shows its interval, regression shows a formatted p-value
	assert.Contains(t, didLine, "via DiD test")
	assert.Contains(t, didLine, "[")
	assert.Contains(t, regLine, "p=0.")
	assert.Contains(t, regLine, "[")
}

func TestWriteSummary_RowOrder(t *testing.T) {
	a, err := Run(DefaultSimConfig(), NewExperimentKey(42))
	require.NoError(t, err)

	var b strings.Builder
	a.WriteSummary(&b)
	out := b.String()

	naiveIdx := strings.Index(out, "Naive")
	manualIdx := strings.Index(out, "Manual Correction")
	didIdx := strings.Index(out, "DiD")
	regIdx := strings.Index(out, "Regression")

	assert.True(t, naiveIdx < manualIdx && manualIdx < didIdx && didIdx < regIdx,
		"rows out of order: %d %d %d %d", naiveIdx, manualIdx, didIdx, regIdx)
}
