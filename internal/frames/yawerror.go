package frames

import (
	"math"
	"sort"

	"github.com/banshee-data/orientation.report/internal/angles"
)

// YawError is the per-frame yaw error of the best candidate against the
// solution, wrapped into (-180, 180].
type YawError struct {
	FrameIndex int
	SignedDeg  float64
	AbsDeg     float64
	ZenithDeg  float64 // solution zenith angle, for segmentation
}

// YawErrors joins best-candidate records against solution rows on frame
// index and returns the wrapped signed error per frame. The join is inner:
// a frame without a solution row is dropped, never defaulted. The result is
// sorted by frame index.
func YawErrors(best []FrameRecord, solutions []SolutionRecord) []YawError {
	byFrame := make(map[int]SolutionRecord, len(solutions))
	for _, s := range solutions {
		byFrame[s.FrameIndex] = s
	}

	out := make([]YawError, 0, len(best))
	for _, b := range best {
		s, ok := byFrame[b.FrameIndex]
		if !ok {
			continue
		}
		signed := angles.WrapDeg(b.CandidateYaw() - s.YawDeg)
		out = append(out, YawError{
			FrameIndex: b.FrameIndex,
			SignedDeg:  signed,
			AbsDeg:     math.Abs(signed),
			ZenithDeg:  s.ZenithDeg(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FrameIndex < out[j].FrameIndex })
	return out
}

// PairRMSE inner-joins two per-frame results tables on frame index and
// returns their weighted RMSE values as aligned pairs, ordered by frame
// index. Rows whose weighted RMSE is NaN (column absent) are skipped.
func PairRMSE(a, b []SolutionRecord) (as, bs []float64) {
	byFrame := make(map[int]SolutionRecord, len(b))
	for _, s := range b {
		byFrame[s.FrameIndex] = s
	}

	sorted := make([]SolutionRecord, len(a))
	copy(sorted, a)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FrameIndex < sorted[j].FrameIndex })

	for _, s := range sorted {
		o, ok := byFrame[s.FrameIndex]
		if !ok || math.IsNaN(s.WeightedRMSE) || math.IsNaN(o.WeightedRMSE) {
			continue
		}
		as = append(as, s.WeightedRMSE)
		bs = append(bs, o.WeightedRMSE)
	}
	return as, bs
}
