package frames

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildErrorSurface(t *testing.T) {
	records := []FrameRecord{
		{FrameIndex: 0, YawDeg: 0, YawOffsetDeg: -10, WeightedRMSE: 0.3},
		{FrameIndex: 0, YawDeg: 0, YawOffsetDeg: 0, WeightedRMSE: 0.1},
		{FrameIndex: 0, YawDeg: 0, YawOffsetDeg: 10, WeightedRMSE: 0.3},
		{FrameIndex: 1, YawDeg: 0, YawOffsetDeg: 0, WeightedRMSE: 0.2},
		{FrameIndex: 1, YawDeg: 0, YawOffsetDeg: 10, WeightedRMSE: 0.4},
	}

	grid, err := BuildErrorSurface(records, 21)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, grid.Frames)
	require.Len(t, grid.Yaw, 21)
	assert.InDelta(t, -10, grid.Yaw[0], 1e-9)
	assert.InDelta(t, 10, grid.Yaw[20], 1e-9)

	// Frame 0 spans the whole axis: endpoints at delta 0.2, centre at 0.
	assert.InDelta(t, 0.2, grid.Z[0][0], 1e-9)
	assert.InDelta(t, 0, grid.Z[0][10], 1e-9)
	assert.InDelta(t, 0.2, grid.Z[0][20], 1e-9)
	// Midway between candidates the delta interpolates linearly.
	assert.InDelta(t, 0.1, grid.Z[0][5], 1e-9)

	// Frame 1 only covers [0, 10]; cells to the left stay empty.
	assert.True(t, math.IsNaN(grid.Z[1][0]))
	assert.InDelta(t, 0, grid.Z[1][10], 1e-9)
	assert.InDelta(t, 0.2, grid.Z[1][20], 1e-9)
}

func TestBuildErrorSurfaceUnwrapsYawAxis(t *testing.T) {
	// Candidates straddle the wrap boundary; the axis must span 20
	// degrees, not 350.
	records := []FrameRecord{
		{FrameIndex: 0, YawDeg: 175, YawOffsetDeg: 0, WeightedRMSE: 0.1},
		{FrameIndex: 0, YawDeg: 175, YawOffsetDeg: 10, WeightedRMSE: 0.2},
		{FrameIndex: 0, YawDeg: 175, YawOffsetDeg: 20, WeightedRMSE: 0.3},
	}

	grid, err := BuildErrorSurface(records, 3)
	require.NoError(t, err)
	assert.InDelta(t, 20, grid.Yaw[len(grid.Yaw)-1]-grid.Yaw[0], 1e-9)
}

func TestBuildErrorSurfaceErrors(t *testing.T) {
	_, err := BuildErrorSurface(nil, 10)
	require.Error(t, err)

	_, err = BuildErrorSurface([]FrameRecord{{FrameIndex: 0}}, 1)
	require.Error(t, err)

	// Every candidate at the same yaw: no axis to grid.
	_, err = BuildErrorSurface([]FrameRecord{
		{FrameIndex: 0, YawDeg: 5},
		{FrameIndex: 1, YawDeg: 5},
	}, 10)
	require.Error(t, err)
}
