package frames

import (
	"fmt"
	"math"
	"sort"

	"github.com/banshee-data/orientation.report/internal/angles"
	"gonum.org/v1/gonum/floats"
)

// SurfaceGrid is a rectangular sampling of candidate delta RMSE over the
// (unwrapped yaw, frame) plane. Z is indexed [frame][yaw sample]; cells
// outside a frame's candidate yaw extent are NaN so the renderer can leave
// them empty instead of inventing values.
type SurfaceGrid struct {
	Yaw    []float64 // sample positions along the unwrapped yaw axis, ascending
	Frames []int     // distinct frame indices, ascending
	Z      [][]float64
}

// frameSample is one candidate's position on the surface.
type frameSample struct {
	yaw   float64
	delta float64
}

// BuildErrorSurface grids the per-candidate delta RMSE (weighted RMSE above
// the frame's minimum) over an unwrapped yaw axis. The candidate yaw values
// of all records are unwrapped together so the axis is continuous across
// the -180/180 boundary; within each frame the delta is linearly
// interpolated between that frame's own candidates.
func BuildErrorSurface(records []FrameRecord, yawSamples int) (SurfaceGrid, error) {
	if len(records) == 0 {
		return SurfaceGrid{}, fmt.Errorf("no candidate records to grid")
	}
	if yawSamples < 2 {
		return SurfaceGrid{}, fmt.Errorf("need at least 2 yaw samples, have %d", yawSamples)
	}

	deltas := DeltaRMSE(records)

	wrapped := make([]float64, len(records))
	for i, r := range records {
		wrapped[i] = r.CandidateYaw()
	}
	unwrap := angles.Unwrap(wrapped)

	byFrame := make(map[int][]frameSample, len(records))
	for i, r := range records {
		byFrame[r.FrameIndex] = append(byFrame[r.FrameIndex], frameSample{
			yaw:   unwrap[wrapped[i]],
			delta: deltas[i],
		})
	}

	frameIdx := make([]int, 0, len(byFrame))
	for f := range byFrame {
		frameIdx = append(frameIdx, f)
	}
	sort.Ints(frameIdx)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, samples := range byFrame {
		for _, s := range samples {
			lo = math.Min(lo, s.yaw)
			hi = math.Max(hi, s.yaw)
		}
	}
	if lo == hi {
		return SurfaceGrid{}, fmt.Errorf("degenerate yaw axis: all candidates at %g", lo)
	}

	yaw := make([]float64, yawSamples)
	floats.Span(yaw, lo, hi)

	z := make([][]float64, len(frameIdx))
	for fi, f := range frameIdx {
		samples := byFrame[f]
		sort.Slice(samples, func(i, j int) bool { return samples[i].yaw < samples[j].yaw })

		row := make([]float64, yawSamples)
		for xi, x := range yaw {
			row[xi] = interpolate(samples, x)
		}
		z[fi] = row
	}

	return SurfaceGrid{Yaw: yaw, Frames: frameIdx, Z: z}, nil
}

// interpolate evaluates the piecewise-linear delta at yaw position x over
// one frame's sorted samples, NaN outside the frame's extent.
func interpolate(sorted []frameSample, x float64) float64 {
	if len(sorted) == 0 || x < sorted[0].yaw || x > sorted[len(sorted)-1].yaw {
		return math.NaN()
	}
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i].yaw >= x })
	if sorted[i].yaw == x {
		return sorted[i].delta
	}
	a, b := sorted[i-1], sorted[i]
	t := (x - a.yaw) / (b.yaw - a.yaw)
	return a.delta + t*(b.delta-a.delta)
}
