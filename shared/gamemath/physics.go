package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAxis keeps a centre point at least half away from both ends of
// [0, extent]. When extent is smaller than 2*half the point is centred.
func ClampAxis(v, half, extent float64) float64 {
	if extent < 2*half {
		return extent / 2
	}
	return Clamp(v, half, extent-half)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Length returns the euclidean length of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize returns (x, y) scaled to unit length, or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
