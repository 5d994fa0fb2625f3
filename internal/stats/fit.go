package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LinearFit is an ordinary least-squares line y = Alpha + Beta*x.
type LinearFit struct {
	Alpha float64
	Beta  float64
}

// FitLinear fits a least-squares line through the paired observations.
// Returns ErrLengthMismatch for unequal inputs and ErrDegenerate when fewer
// than two points are available.
func FitLinear(x, y []float64) (LinearFit, error) {
	if len(x) != len(y) {
		return LinearFit{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return LinearFit{}, fmt.Errorf("%w: need at least 2 points, have %d", ErrDegenerate, len(x))
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return LinearFit{Alpha: alpha, Beta: beta}, nil
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Alpha + f.Beta*x
}

// PredictAll evaluates the fitted line at every x.
func (f LinearFit) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f.Predict(x)
	}
	return out
}
