// Package swarm owns particle state: positions, velocities and the spawn layout.
// It satisfies the physics position/velocity views with index-aligned slices.
package swarm

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/physics"
)

// Handle identifies a particle for the lifetime of a run
type Handle int

// Store holds particle state in parallel slices
// Handles are stable: particles are never removed during a run
type Store struct {
	pos []r2.Vec
	vel []r2.Vec
}

// NewStore creates a store with the given initial positions at rest
func NewStore(positions []r2.Vec) *Store {
	s := &Store{
		pos: make([]r2.Vec, len(positions)),
		vel: make([]r2.Vec, len(positions)),
	}
	copy(s.pos, positions)
	return s
}

// NewGrid spawns width×width particles centred on the origin, spacing apart
func NewGrid(width int, spacing float64) *Store {
	return NewStore(GridLayout(width, spacing))
}

// GridLayout returns the row-major positions of a width×width grid centred on the origin
func GridLayout(width int, spacing float64) []r2.Vec {
	if width <= 0 {
		return nil
	}
	origin := -float64(width)*spacing/2 + spacing/2
	out := make([]r2.Vec, 0, width*width)
	for i := 0; i < width; i++ {
		for j := 0; j < width; j++ {
			out = append(out, r2.Vec{
				X: origin + float64(i)*spacing,
				Y: origin + float64(j)*spacing,
			})
		}
	}
	return out
}

// Len returns the particle count
func (s *Store) Len() int { return len(s.pos) }

// Position returns the world position of particle i
func (s *Store) Position(i int) r2.Vec { return s.pos[i] }

// Velocity returns the velocity of particle i
func (s *Store) Velocity(i int) r2.Vec { return s.vel[i] }

// SetVelocity overwrites the velocity of particle i
func (s *Store) SetVelocity(i int, v r2.Vec) { s.vel[i] = v }

// Integrate advances every position by its velocity over dt
func (s *Store) Integrate(dt float64) {
	for i := range s.pos {
		s.pos[i] = physics.Integrate(s.pos[i], s.vel[i], dt)
	}
}

// Centroid returns the mean position, or the origin for an empty store
func (s *Store) Centroid() r2.Vec {
	if len(s.pos) == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range s.pos {
		sum = r2.Add(sum, p)
	}
	return r2.Scale(1/float64(len(s.pos)), sum)
}

// Each calls fn for every particle in storage order
func (s *Store) Each(fn func(h Handle, pos, vel r2.Vec)) {
	for i := range s.pos {
		fn(Handle(i), s.pos[i], s.vel[i])
	}
}

var (
	_ physics.PositionView = (*Store)(nil)
	_ physics.VelocityView = (*Store)(nil)
)
