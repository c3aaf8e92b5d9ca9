package parameter

// Tunable constant defaults and bindings
// Bindings are runes; both cases of a letter are accepted by the input layer
const (
	// MaxAccelerationDefault clamps the summed per-particle acceleration (world units/sec²)
	MaxAccelerationDefault  = 4000.0
	MaxAccelerationDelta    = 100.0
	MaxAccelerationIncrease = 'm'
	MaxAccelerationDecrease = 'n'

	// InterParticleGravityDefault is G for particle-particle attraction
	InterParticleGravityDefault  = 400000.0
	InterParticleGravityDelta    = 10000.0
	InterParticleGravityIncrease = 'g'
	InterParticleGravityDecrease = 'f'
)
