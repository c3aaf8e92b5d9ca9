package parameter

// Spawn layout
const (
	// SpawnGridWidth is the number of particles along each axis (total = width²)
	SpawnGridWidth = 16

	// SpawnSpacing is the world distance between neighbouring grid particles
	SpawnSpacing = 5.0
)
