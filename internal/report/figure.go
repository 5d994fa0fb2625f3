// Package report renders the toolkit's chart artifacts: static figures via
// gonum/plot and the interactive error surface via go-echarts. It only
// draws series it is handed; all statistics are computed by the callers.
package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default figure sizes. The small size matches the column-width report
// figures; the wide size suits standalone CDF and histogram panels.
const (
	SmallWidth  = 3.3 * vg.Inch
	SmallHeight = 2.5 * vg.Inch
	WideWidth   = 7 * vg.Inch
	WideHeight  = 5 * vg.Inch
)

// NewFigure creates a gridded plot with axis labels set.
func NewFigure(xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func makeXYs(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series length mismatch: %d vs %d", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts, nil
}

// AddLine draws a line series. The series index selects a palette colour so
// successive series on one figure stay distinguishable; a non-empty label
// adds a legend entry.
func AddLine(p *plot.Plot, seriesIdx int, label string, x, y []float64) error {
	pts, err := makeXYs(x, y)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line series: %w", err)
	}
	line.Color = plotutil.Color(seriesIdx)
	line.Width = vg.Points(1)
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return nil
}

// AddScatter draws a scatter series with small glyphs.
func AddScatter(p *plot.Plot, seriesIdx int, label string, x, y []float64) error {
	pts, err := makeXYs(x, y)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter series: %w", err)
	}
	s.GlyphStyle.Color = plotutil.Color(seriesIdx)
	s.GlyphStyle.Radius = vg.Points(1)
	p.Add(s)
	if label != "" {
		p.Legend.Add(label, s)
	}
	return nil
}

// AddHistogramBars draws a filled histogram of the sample with the given
// number of bins.
func AddHistogramBars(p *plot.Plot, xs []float64, bins int) error {
	h, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)
	return nil
}

// AddVLine draws a dashed vertical marker spanning [y0, y1] at x.
func AddVLine(p *plot.Plot, x, y0, y1 float64, seriesIdx int, label string) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}})
	if err != nil {
		return fmt.Errorf("vertical marker: %w", err)
	}
	line.Color = plotutil.Color(seriesIdx)
	line.Width = vg.Points(0.8)
	line.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return nil
}

// Save writes the figure to path; the format follows the file extension
// (.svg, .png, .pdf).
func Save(p *plot.Plot, width, height vg.Length, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
