// Package engine composes the per-tick pipeline: constant adjustment, force integration, position integration
// and metric publishing. It owns no goroutines; the caller drives Tick from its loop.
package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/swarm"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// Simulation wires the constants store, the physics engine and the particle store
// Not safe for concurrent use; metrics in Status are
type Simulation struct {
	Tuning  *tuning.Store
	Physics *physics.Engine
	Swarm   *swarm.Store
	Status  *status.Registry

	attractor *atomic.Bool
	engaged   *atomic.Bool
	paused    *atomic.Bool
}

// TickResult reports what one tick changed
type TickResult struct {
	Adjustments []tuning.Adjustment // reused by the next Tick
	Stats       physics.StepStats
}

func NewSimulation(t *tuning.Store, p *physics.Engine, s *swarm.Store, reg *status.Registry) *Simulation {
	sim := &Simulation{
		Tuning:    t,
		Physics:   p,
		Swarm:     s,
		Status:    reg,
		attractor: reg.Bools.Get(status.KeyAttractor),
		engaged:   reg.Bools.Get(status.KeyEngaged),
		paused:    reg.Bools.Get(status.KeyPaused),
	}
	reg.PublishConstants(t)
	return sim
}

// Constants snapshots the tunable values the physics engine reads
func (s *Simulation) Constants() physics.Constants {
	return physics.Constants{
		MaxAcceleration:      s.Tuning.Get(tuning.MaxAcceleration),
		InterParticleGravity: s.Tuning.Get(tuning.InterParticleGravity),
	}
}

// Tick advances the simulation by dt seconds
// Adjustments apply before forces so a held key affects this tick's physics
func (s *Simulation) Tick(dt float64, held tuning.KeyState, a physics.Attractor) TickResult {
	adj := s.Tuning.Adjust(held)
	for _, x := range adj {
		log.Printf("tuning: %s %+g -> %g", x.ID, x.Delta, x.Value)
	}

	stats := s.Physics.Step(s.Swarm, s.Swarm, s.Constants(), a, dt)
	s.Swarm.Integrate(dt)

	if stats.NonFinite > 0 {
		log.Printf("physics: %d non-finite particles zeroed", stats.NonFinite)
	}

	s.Status.PublishAdjustments(adj)
	s.Status.PublishStep(stats, dt)
	s.attractor.Store(a.Present)
	s.engaged.Store(a.Engaged)

	return TickResult{Adjustments: adj, Stats: stats}
}

// ResetConstants restores every tunable to its startup value
func (s *Simulation) ResetConstants() {
	s.Tuning.Reset()
	s.Status.PublishConstants(s.Tuning)
	log.Printf("tuning: constants reset")
}

// SetMode switches between swarm and pointer attraction
func (s *Simulation) SetMode(m physics.Mode) {
	s.Physics.Mode = m
	log.Printf("physics: mode %s", m)
}

// SetPaused publishes pause state for the HUD
func (s *Simulation) SetPaused(p bool) {
	s.paused.Store(p)
}
