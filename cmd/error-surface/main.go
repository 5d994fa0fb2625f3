// Command error-surface renders an interactive 3D chart of candidate delta
// weighted RMSE over (unwrapped yaw, frame index) for one evaluation run,
// with the solution's unwrapped yaw path drawn along the zero plane.
//
// Usage:
//
//	error-surface [-o error_surface.html] [-yaw-samples 360] <run-directory>
package main

import (
	"flag"
	"log"
	"os"
	"sort"

	"github.com/banshee-data/orientation.report/internal/angles"
	"github.com/banshee-data/orientation.report/internal/frames"
	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/report"
)

func main() {
	out := flag.String("o", "error_surface.html", "output HTML path")
	yawSamples := flag.Int("yaw-samples", 360, "samples along the unwrapped yaw axis")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: error-surface [-o out.html] [-yaw-samples n] <run-directory>")
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

	grid, err := frames.BuildErrorSurface(records, *yawSamples)
	if err != nil {
		log.Fatalf("build surface for %s: %v", runDir, err)
	}

	// The solution path unwraps in frame order: the trajectory itself is
	// the continuous signal, unlike the order-independent candidate axis.
	sort.Slice(solutions, func(i, j int) bool { return solutions[i].FrameIndex < solutions[j].FrameIndex })
	pathWrapped := make([]float64, len(solutions))
	pathFrames := make([]int, len(solutions))
	for i, s := range solutions {
		pathWrapped[i] = angles.WrapDeg(s.YawDeg)
		pathFrames[i] = s.FrameIndex
	}
	pathYaw := angles.UnwrapSequence(pathWrapped)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := report.RenderErrorSurface(f, grid, pathYaw, pathFrames, "Yaw vs Error vs Time"); err != nil {
		log.Fatalf("%v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d frames x %d yaw samples)", *out, len(grid.Frames), len(grid.Yaw))
}
