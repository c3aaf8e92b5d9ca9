// Package vmath holds the float64 2D vector helpers used by the swarm physics.
// Vectors are gonum r2.Vec; helpers here cover the zero-safe and clamping cases r2 leaves to the caller
package vmath

import "math"

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MaxF returns the larger of a and b without the NaN/signed-zero handling of math.Max
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
