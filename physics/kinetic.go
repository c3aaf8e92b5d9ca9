package physics

import "gonum.org/v1/gonum/spatial/r2"

// Integrate performs explicit Euler position integration: p = p + v*dt
func Integrate(pos, vel r2.Vec, dt float64) r2.Vec {
	return r2.Add(pos, r2.Scale(dt, vel))
}

// ApplyAccel performs explicit Euler velocity integration: v = v + a*dt
func ApplyAccel(vel, acc r2.Vec, dt float64) r2.Vec {
	return r2.Add(vel, r2.Scale(dt, acc))
}
