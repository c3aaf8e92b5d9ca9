// Package status publishes simulation metrics for the HUD and debug log.
// The simulation writes on its own goroutine; readers may be anywhere.
package status

import (
	"sync/atomic"

	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// Metric keys written by the simulation
const (
	KeyTicks        = "sim.ticks"
	KeyParticles    = "sim.particles"
	KeyPaused       = "sim.paused"
	KeySkipped      = "sim.skipped"
	KeyDt           = "sim.dt"
	KeyAccelClamped = "phys.accel_clamped"
	KeySpeedCapped  = "phys.speed_capped"
	KeyNonFinite    = "phys.non_finite"
	KeyMaxAccel     = "phys.max_accel"
	KeyMaxSpeed     = "phys.max_speed"
	KeyPeakSpeed    = "phys.peak_speed"
	KeyAdjustments  = "tune.adjustments"
	KeyAttractor    = "input.attractor"
	KeyEngaged      = "input.engaged"
	KeyAudioEnabled = "audio.enabled"
	KeyCuesPlayed   = "audio.cues"
)

// ConstantKey is the float metric key mirroring a tunable constant
func ConstantKey(id tuning.ID) string {
	return "tune." + id.String()
}

// Registry is the metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]

	// Hot-path pointers cached at construction
	ticks        *atomic.Int64
	particles    *atomic.Int64
	skipped      *atomic.Bool
	dt           *AtomicFloat
	accelClamped *atomic.Int64
	speedCapped  *atomic.Int64
	nonFinite    *atomic.Int64
	maxAccel     *AtomicFloat
	maxSpeed     *AtomicFloat
	peakSpeed    *AtomicFloat
	adjustments  *atomic.Int64
	constants    [tuning.Count]*AtomicFloat
}

func NewRegistry() *Registry {
	r := &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
	r.ticks = r.Ints.Get(KeyTicks)
	r.particles = r.Ints.Get(KeyParticles)
	r.skipped = r.Bools.Get(KeySkipped)
	r.dt = r.Floats.Get(KeyDt)
	r.accelClamped = r.Ints.Get(KeyAccelClamped)
	r.speedCapped = r.Ints.Get(KeySpeedCapped)
	r.nonFinite = r.Ints.Get(KeyNonFinite)
	r.maxAccel = r.Floats.Get(KeyMaxAccel)
	r.maxSpeed = r.Floats.Get(KeyMaxSpeed)
	r.peakSpeed = r.Floats.Get(KeyPeakSpeed)
	r.adjustments = r.Ints.Get(KeyAdjustments)
	for id := tuning.ID(0); id < tuning.Count; id++ {
		r.constants[id] = r.Floats.Get(ConstantKey(id))
	}
	return r
}

// PublishStep records the outcome of one physics step
func (r *Registry) PublishStep(s physics.StepStats, dt float64) {
	r.ticks.Add(1)
	r.particles.Store(int64(s.Particles))
	r.skipped.Store(s.Skipped)
	r.dt.Set(dt)
	r.accelClamped.Store(int64(s.AccelClamped))
	r.speedCapped.Store(int64(s.SpeedCapped))
	r.nonFinite.Store(int64(s.NonFinite))
	r.maxAccel.Set(s.MaxAccel)
	r.maxSpeed.Set(s.MaxSpeed)
	r.peakSpeed.Peak(s.MaxSpeed)
}

// PublishConstants mirrors every tunable value
func (r *Registry) PublishConstants(s *tuning.Store) {
	s.Each(func(c tuning.Constant) {
		r.constants[c.ID].Set(c.Value)
	})
}

// PublishAdjustments counts applied adjustments and mirrors the new values
func (r *Registry) PublishAdjustments(adj []tuning.Adjustment) {
	for _, a := range adj {
		r.constants[a.ID].Set(a.Value)
	}
	r.adjustments.Add(int64(len(adj)))
}

// Constant reads the mirrored value of a tunable
func (r *Registry) Constant(id tuning.ID) float64 {
	return r.constants[id].Get()
}

func (r *Registry) Ticks() int64 {
	return r.ticks.Load()
}
