package parameter

// Particle and attractor physics, fixed for a run
const (
	// ParticleMass is the mass of every swarm particle
	ParticleMass = 1.0

	// AttractorMass is the mass of the pointer attractor
	AttractorMass = 10000.0

	// AttractorGravity is the attractor's gravitational constant, independent of the tunable inter-particle one
	AttractorGravity = 50000.0

	// MaxVelocity caps particle speed (world units/sec) at the end of every tick
	MaxVelocity = 500.0

	// SofteningFloor is the minimum squared separation used in the inverse-square law
	SofteningFloor = 1.0
)
