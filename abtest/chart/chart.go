// Package chart renders the estimator comparison plot.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/abtest-sim/abtest-sim/abtest"
)

// methodColors assigns each estimator its fixed plot color.
var methodColors = map[abtest.Method]color.RGBA{
	abtest.MethodNaive:      {R: 255, A: 255},         // red
	abtest.MethodManual:     {R: 255, G: 165, A: 255}, // orange
	abtest.MethodDiD:        {G: 128, A: 255},         // green
	abtest.MethodRegression: {B: 255, A: 255},         // blue
}

// ciPoints adapts one estimate to the plotter XYer/YErrorer pair so its
// confidence interval renders as a vertical segment through the point.
type ciPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render draws the comparison chart and writes it to path (format chosen by
// extension, e.g. .png or .svg). One point per estimator on a fixed
// categorical x-axis, a vertical 95% CI segment where the estimator defines
// one, and a dashed reference line at zero effect.
func Render(estimates []abtest.EffectEstimate, path string) error {
	p := plot.New()
	p.Title.Text = "Treatment Effect Estimates"
	p.Y.Label.Text = "Estimated effect"

	names := make([]string, len(estimates))
	for i, e := range estimates {
		names[i] = string(e.Method)
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(estimates)) - 0.5

	if err := addZeroLine(p, len(estimates)); err != nil {
		return err
	}

	for i, e := range estimates {
		c, ok := methodColors[e.Method]
		if !ok {
			return fmt.Errorf("no color assigned for method %q", e.Method)
		}

		if e.HasCI {
			pts := ciPoints{
				XYs:     plotter.XYs{{X: float64(i), Y: e.Effect}},
				YErrors: plotter.YErrors{{Low: e.Effect - e.CI.Lower, High: e.CI.Upper - e.Effect}},
			}
			bars, err := plotter.NewYErrorBars(pts)
			if err != nil {
				return fmt.Errorf("error bars for %s: %w", e.Method, err)
			}
			bars.LineStyle.Color = c
			bars.LineStyle.Width = vg.Points(1.5)
			p.Add(bars)
		}

		scatter, err := plotter.NewScatter(plotter.XYs{{X: float64(i), Y: e.Effect}})
		if err != nil {
			return fmt.Errorf("scatter for %s: %w", e.Method, err)
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(string(e.Method), scatter)
	}

	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// addZeroLine draws the dashed zero-effect reference across the x range.
func addZeroLine(p *plot.Plot, n int) error {
	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 0},
		{X: float64(n) - 0.5, Y: 0},
	})
	if err != nil {
		return fmt.Errorf("zero reference line: %w", err)
	}
	line.LineStyle.Color = color.Gray{Y: 128}
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(line)
	return nil
}
