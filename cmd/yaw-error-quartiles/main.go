// Command yaw-error-quartiles renders the absolute yaw error CDF of one
// evaluation run segmented by the solution's zenith angle quartile, to show
// how accuracy degrades with tilt.
//
// Usage:
//
//	yaw-error-quartiles [-o yaw_error_cdf_by_zenith.png] <run-directory>
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/banshee-data/orientation.report/internal/frames"
	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/report"
	"github.com/banshee-data/orientation.report/internal/stats"
)

var thresholds = []float64{0.1, 0.5, 1.0}

func main() {
	out := flag.String("o", "yaw_error_cdf_by_zenith.png", "output figure path")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: yaw-error-quartiles [-o out.png] <run-directory>")
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

	errs := frames.YawErrors(frames.SelectBest(records), solutions)
	if len(errs) == 0 {
		log.Fatalf("no frames in %s have both candidates and a solution row", runDir)
	}

	zeniths := make([]float64, len(errs))
	for i, e := range errs {
		zeniths[i] = e.ZenithDeg
	}
	q := stats.Quartiles(zeniths)

	// Quartile bands over the zenith axis, closed on the right edge like
	// the quantiles that define them.
	lo := math.Inf(-1)
	bands := []struct {
		lo, hi float64
		name   string
	}{
		{lo, q[0], fmt.Sprintf("zenith <= %.1f", q[0])},
		{q[0], q[1], fmt.Sprintf("%.1f - %.1f", q[0], q[1])},
		{q[1], q[2], fmt.Sprintf("%.1f - %.1f", q[1], q[2])},
		{q[2], math.Inf(1), fmt.Sprintf("zenith > %.1f", q[2])},
	}

	fig := report.NewFigure("Absolute Yaw Error [deg]", "Cumulative % of Frames")
	fig.Title.Text = "Absolute Yaw Error CDF by Zenith Angle Quartile"
	fig.Legend.Top = true

	for i, band := range bands {
		var abs []float64
		for _, e := range errs {
			if e.ZenithDeg > band.lo && e.ZenithDeg <= band.hi {
				abs = append(abs, e.AbsDeg)
			}
		}
		if len(abs) == 0 {
			log.Printf("quartile %q has no frames, skipping", band.name)
			continue
		}

		sorted, frac := stats.ECDF(abs)
		pct := make([]float64, len(frac))
		for j, f := range frac {
			pct[j] = 100 * f
		}
		label := fmt.Sprintf("%s (n=%d)", band.name, len(abs))
		if err := report.AddLine(fig, i, label, sorted, pct); err != nil {
			log.Fatalf("quartile %q: %v", band.name, err)
		}
	}

	for i, th := range thresholds {
		if err := report.AddVLine(fig, th, 0, 100, len(bands)+i, fmt.Sprintf("%.1f deg", th)); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if err := report.Save(fig, report.WideWidth, report.WideHeight, *out); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote %s", *out)
}
