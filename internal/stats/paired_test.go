package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairedTTestKnownValues(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 3, 4, 6, 7}

	res, err := PairedTTest(a, b, DirALess)
	require.NoError(t, err)

	assert.Equal(t, 5, res.N)
	assert.InDelta(t, -1.4, res.MeanDiff, 1e-9)
	assert.InDelta(t, 0.5477225575, res.StdDiff, 1e-9)
	assert.InDelta(t, -5.7154760664, res.T, 1e-9)
	assert.InDelta(t, -2.5560386017, res.EffectSize, 1e-9)

	// t = -5.715 with 4 degrees of freedom: two-sided p around 0.0046.
	assert.Greater(t, res.PTwoSided, 0.003)
	assert.Less(t, res.PTwoSided, 0.006)
	assert.InDelta(t, res.PTwoSided/2, res.POneSided, 1e-12)
}

func TestPairedTTestDirectionDisagrees(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 3, 4, 6, 7}

	// Observed mean difference is negative; hypothesising a > b folds
	// the p-value the other way.
	res, err := PairedTTest(a, b, DirAGreater)
	require.NoError(t, err)
	assert.InDelta(t, 1-res.PTwoSided/2, res.POneSided, 1e-12)
	assert.Greater(t, res.POneSided, 0.99)
}

func TestPairedTTestDegenerate(t *testing.T) {
	// All differences identical: zero variance, effect size undefined.
	_, err := PairedTTest([]float64{1, 1, 1}, []float64{2, 2, 2}, DirALess)
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestPairedTTestLengthMismatch(t *testing.T) {
	_, err := PairedTTest([]float64{1, 2}, []float64{1}, DirALess)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPairedTTestTooFewPairs(t *testing.T) {
	_, err := PairedTTest([]float64{1}, []float64{2}, DirALess)
	require.ErrorIs(t, err, ErrDegenerate)

	_, err = PairedTTest(nil, nil, DirALess)
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestPairedTTestSymmetricSample(t *testing.T) {
	// Differences sum to zero: t is 0 and both one-sided p values are
	// one half.
	a := []float64{1, 2, 3}
	b := []float64{2, 2, 2}

	res, err := PairedTTest(a, b, DirALess)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.T, 1e-12)
	assert.InDelta(t, 0.5, res.POneSided, 1e-9)
	assert.InDelta(t, 1.0, res.PTwoSided, 1e-9)
}
