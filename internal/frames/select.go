package frames

import "sort"

// SelectBest returns, for each distinct frame index, the candidate record
// with the lowest weighted RMSE. Ties keep the earliest record in input
// order, so the selection is stable and reproducible for a given file
// order. The result is sorted by frame index ascending. An empty input
// yields an empty result.
func SelectBest(records []FrameRecord) []FrameRecord {
	best := make(map[int]FrameRecord, len(records))
	for _, r := range records {
		b, ok := best[r.FrameIndex]
		if !ok || r.WeightedRMSE < b.WeightedRMSE {
			best[r.FrameIndex] = r
		}
	}

	out := make([]FrameRecord, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FrameIndex < out[j].FrameIndex })
	return out
}

// DeltaRMSE returns, aligned with records, each candidate's weighted RMSE
// above its own frame's minimum. The best candidate of every frame has a
// delta of zero.
func DeltaRMSE(records []FrameRecord) []float64 {
	mins := make(map[int]float64, len(records))
	for _, r := range records {
		if m, ok := mins[r.FrameIndex]; !ok || r.WeightedRMSE < m {
			mins[r.FrameIndex] = r.WeightedRMSE
		}
	}

	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.WeightedRMSE - mins[r.FrameIndex]
	}
	return out
}
