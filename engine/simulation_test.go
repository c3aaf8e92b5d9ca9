package engine

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/swarm"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

type heldKeys map[rune]bool

func (h heldKeys) Held(r rune) bool { return h[r] }

func newTestSimulation(positions []r2.Vec, maxAccel float64) *Simulation {
	c := tuning.Defaults()[tuning.MaxAcceleration]
	c.Value = maxAccel
	return NewSimulation(
		tuning.NewStore(c),
		physics.NewEngine(physics.ModeSwarm),
		swarm.NewStore(positions),
		status.NewRegistry(),
	)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTickAdjustsBeforeForces(t *testing.T) {
	sim := newTestSimulation([]r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}}, 1e9)

	res := sim.Tick(0.001, heldKeys{'g': true}, physics.Attractor{})

	if len(res.Adjustments) != 1 || res.Adjustments[0].ID != tuning.InterParticleGravity {
		t.Fatalf("Expected one gravity adjustment, got %+v", res.Adjustments)
	}

	// G is 410000 after adjustment; dt 0.001 gives speed 410
	vel := sim.Swarm.Velocity(0)
	if !near(vel.Y, 410) || vel.X != 0 {
		t.Errorf("Expected velocity (0,410), got %v", vel)
	}

	pos := sim.Swarm.Position(0)
	if !near(pos.Y, 0.41) {
		t.Errorf("Expected position integrated after velocity update, got %v", pos)
	}
}

func TestTickPublishesStatus(t *testing.T) {
	sim := newTestSimulation(swarm.GridLayout(4, 5), 4000)

	sim.Tick(0.016, heldKeys{'m': true}, physics.Attractor{Pos: r2.Vec{X: 100}, Present: true})

	reg := sim.Status
	if reg.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", reg.Ticks())
	}
	if got := reg.Constant(tuning.MaxAcceleration); got != 4100 {
		t.Errorf("Expected published MaxAcceleration 4100, got %v", got)
	}
	if got := reg.Ints.Get(status.KeyParticles).Load(); got != 16 {
		t.Errorf("Expected 16 particles, got %d", got)
	}
	if !reg.Bools.Get(status.KeyAttractor).Load() {
		t.Error("Expected attractor presence published")
	}
}

func TestTickVelocityInvariant(t *testing.T) {
	sim := newTestSimulation(swarm.GridLayout(8, 2), 1e9)

	for i := 0; i < 50; i++ {
		sim.Tick(0.016, nil, physics.Attractor{Pos: r2.Vec{X: 3, Y: -7}, Present: true})
	}

	sim.Swarm.Each(func(h swarm.Handle, _, vel r2.Vec) {
		if s := math.Hypot(vel.X, vel.Y); s > sim.Physics.Profile.MaxVelocity+1e-9 {
			t.Errorf("Particle %d speed %v exceeds cap", h, s)
		}
	})
}

func TestResetConstants(t *testing.T) {
	sim := newTestSimulation(nil, 4000)

	for i := 0; i < 3; i++ {
		sim.Tick(0.016, heldKeys{'n': true}, physics.Attractor{})
	}
	if got := sim.Tuning.Get(tuning.MaxAcceleration); got != 3700 {
		t.Fatalf("Expected 3700 after three decreases, got %v", got)
	}

	sim.ResetConstants()
	if got := sim.Tuning.Get(tuning.MaxAcceleration); got != 4000 {
		t.Errorf("Expected reset to 4000, got %v", got)
	}
	if got := sim.Status.Constant(tuning.MaxAcceleration); got != 4000 {
		t.Errorf("Expected reset published, got %v", got)
	}
}

func TestSetModePointerGating(t *testing.T) {
	sim := newTestSimulation([]r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}}, 4000)
	sim.SetMode(physics.ModePointer)

	res := sim.Tick(0.016, nil, physics.Attractor{Pos: r2.Vec{X: 10}, Present: true})
	if !res.Stats.Skipped {
		t.Error("Expected pointer mode without engage to skip")
	}
	vel := sim.Swarm.Velocity(0)
	if vel != (r2.Vec{}) {
		t.Errorf("Expected no velocity change, got %v", vel)
	}
}
