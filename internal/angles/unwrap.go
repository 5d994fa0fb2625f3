package angles

import (
	"math"
	"sort"
)

// Unwrap maps each distinct wrapped angle (degrees, nominally (-180, 180])
// to an unwrapped counterpart so the set can be laid out on a continuous
// axis. The mapping is built over the sorted set of unique values, so it is
// independent of how often a value recurs in the input: equal inputs always
// map to the same output. Adjacent sorted values whose gap exceeds 180° are
// treated as a wrap and compensated by a multiple of 360°.
//
// This is a plotting heuristic. If two sorted neighbours are genuinely more
// than 180° apart the compensation misrepresents them; callers accept that.
//
// An empty input yields an empty map; a single value maps to itself.
func Unwrap(valuesDeg []float64) map[float64]float64 {
	out := make(map[float64]float64, len(valuesDeg))
	if len(valuesDeg) == 0 {
		return out
	}

	uniq := make([]float64, 0, len(valuesDeg))
	seen := make(map[float64]struct{}, len(valuesDeg))
	for _, v := range valuesDeg {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Float64s(uniq)

	for i, v := range UnwrapSequence(uniq) {
		out[uniq[i]] = v
	}
	return out
}

// UnwrapSequence applies the classic phase unwrap to an ordered sequence of
// angles in degrees: each step between consecutive samples is shifted by the
// multiple of 360° that minimises its magnitude, and the correction
// accumulates along the sequence. The first sample is returned unchanged.
// Use this when the input order itself is meaningful (for example a yaw
// trajectory over time); use Unwrap for an order-independent axis mapping.
func UnwrapSequence(valuesDeg []float64) []float64 {
	if len(valuesDeg) == 0 {
		return nil
	}

	out := make([]float64, len(valuesDeg))
	out[0] = valuesDeg[0]

	offset := 0.0
	prev := Radians(valuesDeg[0])
	for i := 1; i < len(valuesDeg); i++ {
		cur := Radians(valuesDeg[i])
		delta := cur - prev
		for delta > math.Pi {
			offset -= 2 * math.Pi
			delta -= 2 * math.Pi
		}
		for delta <= -math.Pi {
			offset += 2 * math.Pi
			delta += 2 * math.Pi
		}
		out[i] = Degrees(cur + offset)
		prev = cur
	}
	return out
}
