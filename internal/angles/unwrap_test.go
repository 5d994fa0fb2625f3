package angles

import (
	"math"
	"testing"
)

// A trajectory that crosses the wrap boundary must come out monotonic: the
// wrapped samples 170, 175, -180, -175, -170 are physically 170..190.
func TestUnwrapCrossesBoundary(t *testing.T) {
	input := []float64{170, 175, -180, -175, -170}
	m := Unwrap(input)

	if len(m) != len(input) {
		t.Fatalf("mapping has %d entries, want %d", len(m), len(input))
	}

	prev := math.Inf(-1)
	for i, v := range input {
		u, ok := m[v]
		if !ok {
			t.Fatalf("no mapping for %v", v)
		}
		if u <= prev {
			t.Fatalf("unwrapped sequence not increasing at input[%d]=%v: %v after %v", i, v, u, prev)
		}
		if i > 0 && math.Abs(u-prev-5) > 1e-9 {
			t.Fatalf("step to input[%d] = %v, want 5", i, u-prev)
		}
		// Unwrapping only ever shifts by whole turns.
		if r := math.Mod(math.Abs(u-v), 360); r > 1e-9 && math.Abs(r-360) > 1e-9 {
			t.Fatalf("unwrapped %v -> %v is not a multiple of 360 away", v, u)
		}
		prev = u
	}
}

func TestUnwrapAdjacentStepsBounded(t *testing.T) {
	input := []float64{-170, -100, -30, 40, 110, 180, -110}
	m := Unwrap(input)

	// Walk the mapped values in sorted-unique order of the inputs and
	// confirm no compensated step exceeds half a turn.
	sorted := []float64{-170, -110, -100, -30, 40, 110, 180}
	for i := 1; i < len(sorted); i++ {
		rawGap := sorted[i] - sorted[i-1]
		gap := m[sorted[i]] - m[sorted[i-1]]
		if rawGap <= 180 && math.Abs(gap) > 180+1e-9 {
			t.Errorf("step %v -> %v unwrapped to gap %v", sorted[i-1], sorted[i], gap)
		}
	}
}

func TestUnwrapDuplicatesShareValue(t *testing.T) {
	m := Unwrap([]float64{170, -170, 170, -170, -170})
	if len(m) != 2 {
		t.Fatalf("mapping has %d entries, want 2", len(m))
	}
	// -170 and 170 are 20 degrees apart across the boundary.
	gap := math.Abs(m[170] - m[-170])
	if math.Abs(gap-20) > 1e-9 {
		t.Errorf("|unwrap(170) - unwrap(-170)| = %v, want 20", gap)
	}
}

func TestUnwrapEdgeCases(t *testing.T) {
	if m := Unwrap(nil); len(m) != 0 {
		t.Errorf("Unwrap(nil) = %v, want empty map", m)
	}
	if m := Unwrap([]float64{42.5}); len(m) != 1 || m[42.5] != 42.5 {
		t.Errorf("Unwrap single value = %v, want identity", m)
	}
}

func TestUnwrapSequencePreservesOrder(t *testing.T) {
	// Yaw trajectory sweeping through the boundary twice.
	in := []float64{150, 170, -170, -150, 170, 150}
	out := UnwrapSequence(in)

	want := []float64{150, 170, 190, 210, 170, 150}
	if len(out) != len(want) {
		t.Fatalf("got %d values, want %d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestUnwrapSequenceEmpty(t *testing.T) {
	if out := UnwrapSequence(nil); out != nil {
		t.Errorf("UnwrapSequence(nil) = %v, want nil", out)
	}
}
