package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns the capped velocity and true if it was rescaled; a capped result has magnitude exactly maxSpeed
func CapSpeed(vel r2.Vec, maxSpeed float64) (r2.Vec, bool) {
	if maxSpeed <= 0 {
		return vmath.Zero, vel != vmath.Zero
	}
	capped := vmath.ClampMagnitude(vel, maxSpeed)
	return capped, capped != vel
}

// CapAccel limits the summed acceleration to maxAccel, direction preserved
// Non-positive maxAccel yields zero acceleration
func CapAccel(acc r2.Vec, maxAccel float64) (r2.Vec, bool) {
	capped := vmath.ClampMagnitude(acc, maxAccel)
	return capped, capped != acc
}
