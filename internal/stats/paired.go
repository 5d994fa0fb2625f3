// Package stats implements the numeric summaries the analysis commands
// report: the paired comparison test, descriptive statistics, histogram and
// CDF series, and ordinary least-squares fits.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrLengthMismatch indicates that two sequences expected to be
	// paired differ in length.
	ErrLengthMismatch = errors.New("paired samples differ in length")

	// ErrDegenerate indicates a sequence without enough variance (or
	// enough elements) for the requested ratio to be defined.
	ErrDegenerate = errors.New("degenerate input: zero variance")
)

// Direction states which way a paired comparison is hypothesised to go.
type Direction int

const (
	// DirALess hypothesises that sample a measures lower than sample b.
	DirALess Direction = iota

	// DirAGreater hypothesises that sample a measures higher than
	// sample b.
	DirAGreater
)

// PairedResult holds the outcome of a paired t-test over two aligned
// samples.
type PairedResult struct {
	N          int     // number of pairs
	MeanDiff   float64 // mean of a-b
	StdDiff    float64 // sample standard deviation of a-b (N-1)
	T          float64 // paired t statistic
	PTwoSided  float64
	POneSided  float64 // folded toward the stated direction
	EffectSize float64 // Cohen's d_z: mean diff / std dev of diffs
}

// PairedTTest runs a paired t-test on two samples measured on the same
// units, in the same order. The two-sided p-value comes from the Student's
// t distribution with N-1 degrees of freedom; the one-sided p is p/2 when
// the observed sign agrees with the hypothesised direction and 1-p/2 when
// it does not.
//
// Returns ErrLengthMismatch when the samples differ in length and
// ErrDegenerate when the differences have zero variance (or fewer than two
// pairs exist), rather than letting NaN or Inf escape.
func PairedTTest(a, b []float64, dir Direction) (PairedResult, error) {
	if len(a) != len(b) {
		return PairedResult{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	n := len(a)
	if n < 2 {
		return PairedResult{}, fmt.Errorf("%w: need at least 2 pairs, have %d", ErrDegenerate, n)
	}

	diffs := make([]float64, n)
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	mean := stat.Mean(diffs, nil)
	sd := math.Sqrt(stat.Variance(diffs, nil))
	if sd == 0 {
		return PairedResult{}, fmt.Errorf("%w in paired differences (mean %g over %d pairs)", ErrDegenerate, mean, n)
	}

	t := mean / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	pTwo := 2 * dist.CDF(-math.Abs(t))

	agrees := (dir == DirALess && t < 0) || (dir == DirAGreater && t > 0)
	pOne := 1 - pTwo/2
	if agrees {
		pOne = pTwo / 2
	}

	return PairedResult{
		N:          n,
		MeanDiff:   mean,
		StdDiff:    sd,
		T:          t,
		PTwoSided:  pTwo,
		POneSided:  pOne,
		EffectSize: mean / sd,
	}, nil
}
