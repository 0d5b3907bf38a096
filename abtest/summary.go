package abtest

import (
	"fmt"
	"io"
	"os"
)

// WriteSummary renders the comparison table for one analysis. Rows follow
// the fixed Methods order; the reliability column carries the "not reliable"
// marker for the naive and manually-corrected estimators, the DiD test
// availability, and the regression p-value.
func (a *Analysis) WriteSummary(w io.Writer) {
	fmt.Fprintln(w, "=== Estimator Comparison ===")
	fmt.Fprintf(w, "True effect (injected)  : %.2f\n", a.Config.TrueEffect())
	fmt.Fprintf(w, "Pre-bias (injected)     : %.2f\n", a.Config.PreBias())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-18s %16s %24s %14s\n", "Scenario", "Estimated Effect", "95% CI", "Reliability")
	for _, e := range a.Estimates {
		ci := "-"
		if e.HasCI {
			ci = fmt.Sprintf("[%.3f, %.3f]", e.CI.Lower, e.CI.Upper)
		}
		fmt.Fprintf(w, "%-18s %16.4f %24s %14s\n", string(e.Method), e.Effect, ci, e.Reliability)
	}
}

// Print writes the comparison table to stdout.
func (a *Analysis) Print() {
	a.WriteSummary(os.Stdout)
}
