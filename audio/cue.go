// Package audio plays short cues when a tunable constant is adjusted.
// Cues are generated on the fly with beep; output goes through a Sink so playback can be swapped out.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// Direction of an adjustment cue
type Direction int8

const (
	Down Direction = -1
	Up   Direction = 1
)

// DirectionOf maps a signed delta to a cue direction
func DirectionOf(delta float64) Direction {
	if delta < 0 {
		return Down
	}
	return Up
}

// cueFrequency picks the tone for id and direction
// Each constant is pitched a fifth above the previous one
func cueFrequency(id tuning.ID, dir Direction) float64 {
	base := parameter.CueIncreaseFreq
	if dir == Down {
		base = parameter.CueDecreaseFreq
	}
	return base * math.Pow(1.5, float64(id))
}

// NewCue builds the tone for one adjustment
func NewCue(id tuning.ID, dir Direction, cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, cueFrequency(id, dir))
	if err != nil {
		return nil, fmt.Errorf("cue tone for %s: %w", id, err)
	}

	shaped := newEnvelope(tone, parameter.CueDuration, parameter.CueAttack, parameter.CueRelease, rate)
	return newVolume(shaped, ClampVolume(cfg.MasterVolume)), nil
}

// envelope applies linear attack and release to a stream and ends it at total samples
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
