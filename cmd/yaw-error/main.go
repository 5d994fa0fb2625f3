// Command yaw-error analyses the yaw error of the best candidate per frame
// against the solution for one evaluation run. It renders the signed error
// histogram and the absolute-error CDF, and prints summary statistics with
// the share of frames under the standard accuracy thresholds.
//
// Usage:
//
//	yaw-error [-dir .] <run-directory>
//
// The run directory must contain frame_*_results.csv candidate tables and a
// results.csv solution table.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/banshee-data/orientation.report/internal/frames"
	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/report"
	"github.com/banshee-data/orientation.report/internal/stats"
)

// Accuracy thresholds annotated on the CDF, in degrees.
var thresholds = []float64{0.1, 0.5, 1.0}

func main() {
	outDir := flag.String("dir", ".", "directory for output figures")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: yaw-error [-dir out] <run-directory>")
	}
	runDir := flag.Arg(0)

	fsys := fsutil.OSFileSystem{}
	records, err := frames.LoadFrameTable(fsys, runDir)
	if err != nil {
		log.Fatalf("%v", err)
	}
	solutions, err := frames.LoadSolutionTable(fsys, runDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	best := frames.SelectBest(records)
	errs := frames.YawErrors(best, solutions)
	if len(errs) == 0 {
		log.Fatalf("no frames in %s have both candidates and a solution row", runDir)
	}

	signed := make([]float64, len(errs))
	abs := make([]float64, len(errs))
	for i, e := range errs {
		signed[i] = e.SignedDeg
		abs[i] = e.AbsDeg
	}

	summary := stats.Describe(signed)
	fmt.Printf("yaw error over %d frames: mean %.3f deg, sd %.3f deg, range [%.3f, %.3f]\n",
		summary.N, summary.Mean, summary.Std, summary.Min, summary.Max)
	for _, th := range thresholds {
		fmt.Printf("  |error| <= %.1f deg: %.1f%% of frames\n", th, 100*stats.FractionBelow(abs, th))
	}

	histPath := filepath.Join(*outDir, "yaw_error_hist.png")
	if err := renderHistogram(signed, summary, histPath); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote %s", histPath)

	cdfPath := filepath.Join(*outDir, "yaw_error_cdf.png")
	if err := renderCDF(abs, cdfPath); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote %s", cdfPath)
}

func renderHistogram(signed []float64, summary stats.Summary, path string) error {
	fig := report.NewFigure("Yaw Error [deg]", "Count")
	fig.Title.Text = "Signed Yaw Error Distribution"

	if err := report.AddHistogramBars(fig, signed, 50); err != nil {
		return err
	}

	// Histogram bar heights are not known here; mark the mean and ±1 sd
	// against the bin-count scale instead.
	_, counts := stats.HistogramLine(signed, 50)
	top := 0.0
	for _, c := range counts {
		if c > top {
			top = c
		}
	}

	markers := []struct {
		x     float64
		label string
	}{
		{summary.Mean, fmt.Sprintf("mean %.2f", summary.Mean)},
		{summary.Mean + summary.Std, fmt.Sprintf("±1 sd %.2f", summary.Std)},
		{summary.Mean - summary.Std, ""},
	}
	for i, m := range markers {
		if err := report.AddVLine(fig, m.x, 0, top, i+1, m.label); err != nil {
			return err
		}
	}

	return report.Save(fig, report.WideWidth, report.WideHeight, path)
}

func renderCDF(abs []float64, path string) error {
	fig := report.NewFigure("Absolute Yaw Error [deg]", "Cumulative % of Frames")
	fig.Title.Text = "Absolute Yaw Error CDF"

	sorted, frac := stats.ECDF(abs)
	pct := make([]float64, len(frac))
	for i, f := range frac {
		pct[i] = 100 * f
	}
	if err := report.AddLine(fig, 0, "", sorted, pct); err != nil {
		return err
	}

	for i, th := range thresholds {
		share := 100 * stats.FractionBelow(abs, th)
		label := fmt.Sprintf("<=%.1f deg: %.1f%%", th, share)
		if err := report.AddVLine(fig, th, 0, 100, i+1, label); err != nil {
			return err
		}
	}

	return report.Save(fig, report.WideWidth, report.WideHeight, path)
}
