package angles

import (
	"math"
	"testing"
)

func TestWrapDegRange(t *testing.T) {
	inputs := []float64{
		-720, -540, -360.5, -359, -180.0001, -180, -179.9999,
		-90, -1, 0, 1, 90, 179.9999, 180, 180.0001, 359, 540, 1080.25,
	}
	for _, x := range inputs {
		got := WrapDeg(x)
		if got <= -180 || got > 180 {
			t.Errorf("WrapDeg(%v) = %v, outside (-180, 180]", x, got)
		}
		if again := WrapDeg(got); math.Abs(again-got) > 1e-12 {
			t.Errorf("WrapDeg not idempotent at %v: %v then %v", x, got, again)
		}
	}
}

func TestWrapDegValues(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{360, 0},
		{540, 180},
		{-359, 1},
		{190, -170},
		{-190, 170},
		{359, -1},
	}
	for _, c := range cases {
		if got := WrapDeg(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WrapDeg(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestZenithDeg(t *testing.T) {
	cases := []struct {
		pitch, roll, want float64
	}{
		{0, 0, 0},
		{90, 0, 90},
		{0, 90, 90},
		{180, 0, 180},
		{-90, 0, 90},
	}
	for _, c := range cases {
		if got := ZenithDeg(c.pitch, c.roll); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ZenithDeg(%v, %v) = %v, want %v", c.pitch, c.roll, got, c.want)
		}
	}
}

// The cosine product can land just outside [-1, 1] through rounding; acos
// must not return NaN for such inputs.
func TestZenithDegClampsAtBoundary(t *testing.T) {
	for _, pitch := range []float64{0, 1e-9, -1e-9, 360, -360} {
		got := ZenithDeg(pitch, 0)
		if math.IsNaN(got) {
			t.Fatalf("ZenithDeg(%v, 0) = NaN", pitch)
		}
		if got < 0 || got > 180 {
			t.Fatalf("ZenithDeg(%v, 0) = %v, outside [0, 180]", pitch, got)
		}
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, deg := range []float64{-270, -180, -1, 0, 0.5, 90, 359} {
		if got := Degrees(Radians(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
