package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Zero is the zero vector
var Zero = r2.Vec{}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(v r2.Vec) float64 {
	return r2.Norm2(v)
}

// Magnitude returns Euclidean length
func Magnitude(v r2.Vec) float64 {
	return r2.Norm(v)
}

// NormalizeOrZero returns the unit vector of v, zero-safe
// r2.Unit divides by the norm and yields NaN for the zero vector
func NormalizeOrZero(v r2.Vec) r2.Vec {
	mag := r2.Norm(v)
	if mag == 0 {
		return Zero
	}
	inv := 1.0 / mag
	return r2.Vec{X: v.X * inv, Y: v.Y * inv}
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
// A negative maxMag is treated as zero; a NaN maxMag or NaN component yields NaN
// Magnitude uses hypot, so finite vectors of any size clamp without overflow
func ClampMagnitude(v r2.Vec, maxMag float64) r2.Vec {
	if maxMag <= 0 {
		return Zero
	}
	mag := r2.Norm(v)
	if mag <= maxMag {
		return v
	}
	if math.IsInf(mag, 1) && !math.IsNaN(v.X) && !math.IsNaN(v.Y) {
		if math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			// Infinite components set the direction; finite ones vanish beside them
			v = r2.Vec{X: infSign(v.X), Y: infSign(v.Y)}
		} else {
			v = r2.Scale(0.5, v)
		}
		mag = r2.Norm(v)
	}
	return r2.Scale(maxMag/mag, v)
}

// infSign maps ±Inf to ±1 and finite values to 0
func infSign(f float64) float64 {
	if math.IsInf(f, 0) {
		return math.Copysign(1, f)
	}
	return 0
}

// IsFiniteVec reports whether both components are finite
func IsFiniteVec(v r2.Vec) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
