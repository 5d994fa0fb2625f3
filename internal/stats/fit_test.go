package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLinearRecoversLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 1 + 2x

	fit, err := FitLinear(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1, fit.Alpha, 1e-9)
	assert.InDelta(t, 2, fit.Beta, 1e-9)
	assert.InDelta(t, 21, fit.Predict(10), 1e-9)

	preds := fit.PredictAll([]float64{0, 10})
	assert.InDeltaSlice(t, []float64{1, 21}, preds, 1e-9)
}

func TestFitLinearNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	fit, err := FitLinear(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2, fit.Beta, 0.1)
}

func TestFitLinearErrors(t *testing.T) {
	_, err := FitLinear([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FitLinear([]float64{1}, []float64{1})
	require.ErrorIs(t, err, ErrDegenerate)
}
