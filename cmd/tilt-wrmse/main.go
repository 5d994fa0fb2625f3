// Command tilt-wrmse plots the solved zenith tilt angle against weighted
// RMSE for one or more per-frame results tables, with an ordinary
// least-squares fit per table.
//
// Usage:
//
//	tilt-wrmse [-o tilt_vs_wrmse.svg] results.csv [more.csv ...]
package main

import (
	"flag"
	"log"
	"math"
	"path/filepath"
	"sort"

	"github.com/banshee-data/orientation.report/internal/frames"
	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/report"
	"github.com/banshee-data/orientation.report/internal/stats"
)

func main() {
	out := flag.String("o", "tilt_vs_wrmse.svg", "output figure path")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: tilt-wrmse [-o out.svg] results.csv [more.csv ...]")
	}

	fsys := fsutil.OSFileSystem{}
	fig := report.NewFigure("Zenith Angle [deg]", "Weighted RMSE [deg]")

	for i, path := range flag.Args() {
		rows, err := frames.LoadSolutionFile(fsys, path)
		if err != nil {
			log.Fatalf("%v", err)
		}

		var x, y []float64
		for _, r := range rows {
			if math.IsNaN(r.WeightedRMSE) {
				log.Fatalf("%s: weighted_rmse column required for tilt plots", path)
			}
			x = append(x, r.ZenithDeg())
			y = append(y, r.WeightedRMSE)
		}

		label := filepath.Base(path)
		if err := report.AddScatter(fig, i, label, x, y); err != nil {
			log.Fatalf("plot %s: %v", path, err)
		}

		fit, err := stats.FitLinear(x, y)
		if err != nil {
			log.Printf("skipping fit for %s: %v", path, err)
			continue
		}
		lineX := append([]float64(nil), x...)
		sort.Float64s(lineX)
		if err := report.AddLine(fig, i, "", lineX, fit.PredictAll(lineX)); err != nil {
			log.Fatalf("plot fit for %s: %v", path, err)
		}
		log.Printf("%s: wrmse ~ %.4f + %.4f * zenith over %d frames", label, fit.Alpha, fit.Beta, len(x))
	}

	if err := report.Save(fig, report.SmallWidth, report.SmallHeight, *out); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("wrote %s", *out)
}
