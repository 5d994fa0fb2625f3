package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds basic descriptive statistics for one sample.
type Summary struct {
	N    int
	Mean float64
	Std  float64 // sample standard deviation (N-1)
	Min  float64
	Max  float64
}

// Describe computes descriptive statistics. An empty sample yields a zero
// Summary.
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	return Summary{
		N:    len(xs),
		Mean: stat.Mean(xs, nil),
		Std:  math.Sqrt(stat.Variance(xs, nil)),
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
	}
}

// Quartiles returns the empirical 25th, 50th and 75th percentiles. An empty
// sample yields NaNs.
func Quartiles(xs []float64) [3]float64 {
	if len(xs) == 0 {
		nan := math.NaN()
		return [3]float64{nan, nan, nan}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return [3]float64{
		stat.Quantile(0.25, stat.Empirical, sorted, nil),
		stat.Quantile(0.5, stat.Empirical, sorted, nil),
		stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}

// HistogramLine bins a sample into equal-width bins over its range and
// returns bin centers with counts, suitable for plotting a distribution as
// a line. When every value is identical the range is padded by half a unit
// either side so the single spike still bins. An empty sample yields nil
// series.
func HistogramLine(xs []float64, bins int) (centers, counts []float64) {
	if len(xs) == 0 || bins < 1 {
		return nil, nil
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	counts = make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= bins { // the max value belongs to the last bin
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}

	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	return centers, counts
}

// ECDF returns the sample sorted ascending together with the cumulative
// fraction of values at or below each element. An empty sample yields nil
// series.
func ECDF(xs []float64) (sorted, frac []float64) {
	if len(xs) == 0 {
		return nil, nil
	}

	sorted = make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	frac = make([]float64, len(sorted))
	n := float64(len(sorted))
	for i := range frac {
		frac[i] = float64(i+1) / n
	}
	return sorted, frac
}

// FractionBelow returns the share of values at or below the threshold. An
// empty sample yields zero.
func FractionBelow(xs []float64, threshold float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	count := 0
	for _, x := range xs {
		if x <= threshold {
			count++
		}
	}
	return float64(count) / float64(len(xs))
}
