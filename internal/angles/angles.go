// Package angles provides the degree-domain geometry shared by the analysis
// commands: zenith tilt from pitch and roll, normalisation into (-180, 180],
// and unwrapping of a periodic yaw axis for plotting.
package angles

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// ZenithDeg returns the zenith tilt angle in degrees for a body pitched and
// rolled by the given amounts. The cosine product is clamped to [-1, 1] so
// floating-point rounding at the boundary cannot push acos out of its domain.
// The result is in [0, 180].
func ZenithDeg(pitchDeg, rollDeg float64) float64 {
	c := math.Cos(Radians(pitchDeg)) * math.Cos(Radians(rollDeg))
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return Degrees(math.Acos(c))
}

// WrapDeg normalises an angle into (-180, 180]. The modulo is floored rather
// than truncated so negative inputs land in range; exact multiples of 360
// offset from +180 map to +180, keeping the upper bound closed.
func WrapDeg(deg float64) float64 {
	m := math.Mod(deg+180, 360)
	if m < 0 {
		m += 360
	}
	if m == 0 {
		return 180
	}
	return m - 180
}
