package physics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/vmath"
)

// PositionView is an ordered read view over particle positions
type PositionView interface {
	Len() int
	Position(i int) r2.Vec
}

// VelocityView is an ordered read/write view over particle velocities, index-aligned with PositionView
type VelocityView interface {
	Len() int
	Velocity(i int) r2.Vec
	SetVelocity(i int, v r2.Vec)
}

// Positions adapts a slice to PositionView
type Positions []r2.Vec

func (p Positions) Len() int              { return len(p) }
func (p Positions) Position(i int) r2.Vec { return p[i] }

// Velocities adapts a slice to VelocityView
type Velocities []r2.Vec

func (v Velocities) Len() int                     { return len(v) }
func (v Velocities) Velocity(i int) r2.Vec        { return v[i] }
func (v Velocities) SetVelocity(i int, vel r2.Vec) { v[i] = vel }

// Mode selects which force terms the engine accumulates
type Mode uint8

const (
	// ModeSwarm accumulates pairwise gravity plus the attractor when present
	ModeSwarm Mode = iota
	// ModePointer accumulates only the attractor, and only while engaged
	ModePointer
)

func (m Mode) String() string {
	switch m {
	case ModeSwarm:
		return "swarm"
	case ModePointer:
		return "pointer"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode resolves a mode name
func ParseMode(s string) (Mode, error) {
	switch s {
	case "swarm", "":
		return ModeSwarm, nil
	case "pointer":
		return ModePointer, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want swarm or pointer)", s)
	}
}

// Attractor is the optional pointer attractor for one tick
type Attractor struct {
	Pos     r2.Vec
	Present bool // pointer inside the viewport
	Engaged bool // engage input held; only consulted in ModePointer
}

// Constants is the per-tick snapshot of the tunable values the engine reads
type Constants struct {
	MaxAcceleration      float64
	InterParticleGravity float64
}

// Profile holds the fixed masses and limits
type Profile struct {
	ParticleMass     float64
	AttractorMass    float64
	AttractorGravity float64
	MaxVelocity      float64
	SofteningFloor   float64
}

// DefaultProfile returns the compiled physics constants
func DefaultProfile() Profile {
	return Profile{
		ParticleMass:     parameter.ParticleMass,
		AttractorMass:    parameter.AttractorMass,
		AttractorGravity: parameter.AttractorGravity,
		MaxVelocity:      parameter.MaxVelocity,
		SofteningFloor:   parameter.SofteningFloor,
	}
}

// StepStats summarizes one Step for the status registry
type StepStats struct {
	Particles    int
	Skipped      bool    // pointer mode without an engaged, present attractor
	AccelClamped int     // particles whose summed acceleration hit MaxAcceleration
	SpeedCapped  int     // particles rescaled to MaxVelocity
	NonFinite    int     // particles zeroed for non-finite position or velocity
	MaxAccel     float64 // largest applied acceleration magnitude
	MaxSpeed     float64 // largest post-tick speed
}

// Engine computes gravitational acceleration and integrates velocity
// Brute force O(n²) per tick: every particle visits every other, with no broad phase
type Engine struct {
	Mode    Mode
	Profile Profile

	// Position snapshot reused across ticks
	scratch []r2.Vec
	finite  []bool
}

// NewEngine creates an engine with the default profile
func NewEngine(mode Mode) *Engine {
	return &Engine{
		Mode:    mode,
		Profile: DefaultProfile(),
	}
}

// Step updates every velocity from the current positions, constants, attractor and dt
// Output depends only on the arguments; velocities are written once per particle
func (e *Engine) Step(pos PositionView, vel VelocityView, c Constants, a Attractor, dt float64) StepStats {
	n := pos.Len()
	if vel.Len() != n {
		panic(fmt.Sprintf("physics: %d positions but %d velocities", n, vel.Len()))
	}

	stats := StepStats{Particles: n}
	if n == 0 {
		return stats
	}
	if e.Mode == ModePointer && !(a.Present && a.Engaged) {
		stats.Skipped = true
		return stats
	}

	positions, finite := e.snapshot(pos)
	a = sanitizeAttractor(a)

	for i := 0; i < n; i++ {
		if !finite[i] {
			vel.SetVelocity(i, vmath.Zero)
			stats.NonFinite++
			continue
		}

		acc, clamped := CapAccel(e.accumulate(i, positions, finite, c, a), c.MaxAcceleration)
		if clamped {
			stats.AccelClamped++
		}

		v, capped := CapSpeed(ApplyAccel(vel.Velocity(i), acc, dt), e.Profile.MaxVelocity)
		if !vmath.IsFiniteVec(v) {
			vel.SetVelocity(i, vmath.Zero)
			stats.NonFinite++
			continue
		}
		if capped {
			stats.SpeedCapped++
		}

		vel.SetVelocity(i, v)

		if m := vmath.Magnitude(acc); m > stats.MaxAccel {
			stats.MaxAccel = m
		}
		if s := vmath.Magnitude(v); s > stats.MaxSpeed {
			stats.MaxSpeed = s
		}
	}

	return stats
}

// Acceleration returns the clamped acceleration applied to particle i before velocity integration
func (e *Engine) Acceleration(i int, pos PositionView, c Constants, a Attractor) r2.Vec {
	positions, finite := e.snapshot(pos)
	if !finite[i] {
		return vmath.Zero
	}
	if e.Mode == ModePointer && !(a.Present && a.Engaged) {
		return vmath.Zero
	}
	acc, _ := CapAccel(e.accumulate(i, positions, finite, c, sanitizeAttractor(a)), c.MaxAcceleration)
	return acc
}

// snapshot copies positions once per tick so the inner loop avoids interface dispatch
func (e *Engine) snapshot(pos PositionView) ([]r2.Vec, []bool) {
	n := pos.Len()
	if cap(e.scratch) < n {
		e.scratch = make([]r2.Vec, n)
		e.finite = make([]bool, n)
	}
	e.scratch = e.scratch[:n]
	e.finite = e.finite[:n]

	for i := 0; i < n; i++ {
		p := pos.Position(i)
		e.scratch[i] = p
		e.finite[i] = vmath.IsFiniteVec(p)
	}
	return e.scratch, e.finite
}

// accumulate sums the unclamped acceleration on particle i
func (e *Engine) accumulate(i int, positions []r2.Vec, finite []bool, c Constants, a Attractor) r2.Vec {
	var acc r2.Vec
	pi := positions[i]

	if e.Mode == ModeSwarm {
		gm := c.InterParticleGravity * e.Profile.ParticleMass * e.Profile.ParticleMass
		for j, pj := range positions {
			if j == i || !finite[j] {
				continue
			}
			acc = r2.Add(acc, e.pull(r2.Sub(pj, pi), gm))
		}
	}

	if a.Present {
		acc = r2.Add(acc, e.pull(r2.Sub(a.Pos, pi), e.Profile.AttractorGravity*e.Profile.AttractorMass))
	}

	return acc
}

// pull is the softened inverse-square acceleration along delta
// A zero delta contributes nothing
func (e *Engine) pull(delta r2.Vec, gm float64) r2.Vec {
	distSq := vmath.MaxF(vmath.MagnitudeSq(delta), e.Profile.SofteningFloor)
	return r2.Scale(gm/distSq, vmath.NormalizeOrZero(delta))
}

// sanitizeAttractor drops an attractor with a non-finite position
func sanitizeAttractor(a Attractor) Attractor {
	if a.Present && !vmath.IsFiniteVec(a.Pos) {
		a.Present = false
	}
	return a
}
