// Command distributions renders histogram-as-line distributions of weighted
// RMSE and zenith angle across one or more per-frame results tables. With
// two or more inputs it also renders the paired delta between the first two
// tables (inner join on frame index) and prints the paired t-test for it.
//
// Usage:
//
//	distributions [-bins 10] [-dir .] results_a.csv [results_b.csv ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/banshee-data/orientation.report/internal/frames"
	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/report"
	"github.com/banshee-data/orientation.report/internal/stats"
)

func main() {
	bins := flag.Int("bins", 10, "number of histogram bins")
	outDir := flag.String("dir", ".", "directory for output figures")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: distributions [-bins n] [-dir out] results.csv [more.csv ...]")
	}

	fsys := fsutil.OSFileSystem{}
	tables := make([][]frames.SolutionRecord, flag.NArg())
	for i, path := range flag.Args() {
		rows, err := frames.LoadSolutionFile(fsys, path)
		if err != nil {
			log.Fatalf("%v", err)
		}
		tables[i] = rows
	}

	wrmseFig := report.NewFigure("Weighted RMSE [deg]", "Number of Images")
	zenithFig := report.NewFigure("Zenith Angle [deg]", "Number of Images")

	for i, rows := range tables {
		label := filepath.Base(flag.Arg(i))

		var wrmse, zenith []float64
		for _, r := range rows {
			zenith = append(zenith, r.ZenithDeg())
			if !math.IsNaN(r.WeightedRMSE) {
				wrmse = append(wrmse, r.WeightedRMSE)
			}
		}

		if err := addDistribution(wrmseFig, i, label, wrmse, *bins); err != nil {
			log.Fatalf("wrmse distribution for %s: %v", label, err)
		}
		if err := addDistribution(zenithFig, i, label, zenith, *bins); err != nil {
			log.Fatalf("zenith distribution for %s: %v", label, err)
		}
	}

	save(wrmseFig, filepath.Join(*outDir, "wrmse_distribution.svg"))
	save(zenithFig, filepath.Join(*outDir, "zenith_angle_distribution.svg"))

	if flag.NArg() < 2 {
		return
	}

	a, b := frames.PairRMSE(tables[0], tables[1])
	if len(a) == 0 {
		log.Fatalf("no overlapping frames with weighted_rmse between %s and %s", flag.Arg(0), flag.Arg(1))
	}

	deltas := make([]float64, len(a))
	for i := range a {
		deltas[i] = a[i] - b[i]
	}

	deltaFig := report.NewFigure("Delta Weighted RMSE [deg]", "Number of Images")
	if err := addDistribution(deltaFig, 0, "", deltas, *bins); err != nil {
		log.Fatalf("delta distribution: %v", err)
	}
	save(deltaFig, filepath.Join(*outDir, "delta_wrmse_distribution.svg"))

	res, err := stats.PairedTTest(a, b, stats.DirALess)
	switch {
	case errors.Is(err, stats.ErrDegenerate):
		fmt.Printf("paired comparison over %d frames: no variance in differences (mean delta %.6f)\n",
			len(a), stats.Describe(deltas).Mean)
	case err != nil:
		log.Fatalf("paired comparison: %v", err)
	default:
		fmt.Printf("paired comparison (%s < %s) over %d frames:\n", flag.Arg(0), flag.Arg(1), res.N)
		fmt.Printf("  mean delta wrmse: %.6f deg (sd %.6f)\n", res.MeanDiff, res.StdDiff)
		fmt.Printf("  t = %.4f, one-sided p = %.6f (two-sided %.6f)\n", res.T, res.POneSided, res.PTwoSided)
		fmt.Printf("  effect size (d_z) = %.4f\n", res.EffectSize)
	}
}

func addDistribution(p *plot.Plot, seriesIdx int, label string, xs []float64, bins int) error {
	centers, counts := stats.HistogramLine(xs, bins)
	if centers == nil {
		return fmt.Errorf("empty sample")
	}
	return report.AddLine(p, seriesIdx, label, centers, counts)
}

func save(p *plot.Plot, path string) {
	if err := report.Save(p, report.SmallWidth, report.SmallHeight, path); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote %s", path)
}
