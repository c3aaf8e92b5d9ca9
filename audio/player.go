package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/status"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// Sink consumes finished streamers
type Sink interface {
	Play(s beep.Streamer)
	Close()
}

// speakerSink mixes cues into the system speaker
type speakerSink struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the speaker and starts an empty mixer on it
func OpenSpeaker(cfg Config) (Sink, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLatency)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &speakerSink{mixer: mixer}, nil
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *speakerSink) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Player turns constant adjustments into cues
// A nil sink or disabled config runs silent; every method stays callable
type Player struct {
	mu    sync.Mutex
	cfg   Config
	sink  Sink
	muted bool
	last  [tuning.Count]time.Time

	enabled *atomic.Bool
	played  *atomic.Int64
}

// NewPlayer creates a player writing to sink and publishing to reg
func NewPlayer(cfg Config, sink Sink, reg *status.Registry) *Player {
	p := &Player{
		cfg:     cfg,
		sink:    sink,
		enabled: reg.Bools.Get(status.KeyAudioEnabled),
		played:  reg.Ints.Get(status.KeyCuesPlayed),
	}
	p.enabled.Store(p.active())
	return p
}

// Open creates a player on the system speaker, falling back to silent on failure
func Open(cfg Config, reg *status.Registry) *Player {
	if !cfg.Enabled {
		return NewPlayer(cfg, nil, reg)
	}
	sink, err := OpenSpeaker(cfg)
	if err != nil {
		log.Printf("audio unavailable, running silent: %v", err)
		return NewPlayer(cfg, nil, reg)
	}
	return NewPlayer(cfg, sink, reg)
}

func (p *Player) active() bool {
	return p.sink != nil && p.cfg.Enabled && !p.muted
}

// Enabled reports whether cues are currently audible
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active()
}

// ToggleMute flips the mute flag and returns whether audio is now audible
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	on := p.active()
	p.enabled.Store(on)
	return on
}

// Cue plays one tone per adjusted constant, at most once per CueMinInterval per constant
// Returns the number of cues sent to the sink
func (p *Player) Cue(adj []tuning.Adjustment, now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active() {
		return 0
	}

	sent := 0
	for _, a := range adj {
		if !p.last[a.ID].IsZero() && now.Sub(p.last[a.ID]) < parameter.CueMinInterval {
			continue
		}
		cue, err := NewCue(a.ID, DirectionOf(a.Delta), p.cfg)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		p.last[a.ID] = now
		p.sink.Play(cue)
		sent++
	}
	p.played.Add(int64(sent))
	return sent
}

// Close releases the sink
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sink != nil {
		p.sink.Close()
		p.sink = nil
	}
	p.enabled.Store(false)
}
