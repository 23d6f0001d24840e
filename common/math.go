package common

import "math"

// WrapDegrees maps deg into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// tiny negatives round up to exactly 360 above
	if deg >= 360 {
		return 0
	}
	return deg
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
