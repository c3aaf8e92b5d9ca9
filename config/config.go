// Package config layers compiled defaults, an optional TOML file and SWARM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gravity-swarm/audio"
	"github.com/lixenwraith/gravity-swarm/parameter"
	"github.com/lixenwraith/gravity-swarm/physics"
	"github.com/lixenwraith/gravity-swarm/tuning"
)

// MaxGrid bounds the spawn grid width; pairwise forces make larger swarms unplayable
const MaxGrid = 64

// Config is the effective startup configuration
type Config struct {
	Simulation Simulation         `toml:"simulation"`
	Tunable    map[string]Tunable `toml:"tunable"`
	Audio      Audio              `toml:"audio"`
}

type Simulation struct {
	Mode         string  `toml:"mode"`
	Grid         int     `toml:"grid"`
	Spacing      float64 `toml:"spacing"`
	WorldPerCell float64 `toml:"world_per_cell"`
	TickMillis   int     `toml:"tick_ms"`
}

// Tunable overrides one constant; nil or empty fields keep the compiled default
type Tunable struct {
	Value    *float64 `toml:"value,omitempty"`
	Delta    *float64 `toml:"delta,omitempty"`
	Increase string   `toml:"increase,omitempty"`
	Decrease string   `toml:"decrease,omitempty"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the compiled configuration
func Default() *Config {
	return &Config{
		Simulation: Simulation{
			Mode:         physics.ModeSwarm.String(),
			Grid:         parameter.SpawnGridWidth,
			Spacing:      parameter.SpawnSpacing,
			WorldPerCell: parameter.CameraWorldPerCell,
			TickMillis:   int(parameter.FrameUpdateInterval / time.Millisecond),
		},
		Audio: Audio{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Load builds the configuration from defaults, path (if non-empty) and the process environment
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()
	return c.decode(f, "config "+path)
}

// Decode reads TOML from r over the current values
func (c *Config) Decode(r io.Reader) error {
	return c.decode(r, "config")
}

func (c *Config) decode(r io.Reader, source string) error {
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays SWARM_* variables read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("SWARM_MODE"); ok && v != "" {
		c.Simulation.Mode = v
	}
	if v, ok := lookup("SWARM_GRID"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SWARM_GRID: %w", err)
		}
		c.Simulation.Grid = n
	}
	if v, ok := lookup("SWARM_AUDIO_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SWARM_AUDIO_ENABLED: %w", err)
		}
		c.Audio.Enabled = b
	}
	// Volume is a 0-100 percentage in the environment
	if v, ok := lookup("SWARM_MASTER_VOLUME"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SWARM_MASTER_VOLUME: %w", err)
		}
		c.Audio.Volume = audio.ClampVolume(float64(n) / 100)
	}

	envValues := [tuning.Count]string{
		tuning.MaxAcceleration:      "SWARM_MAX_ACCELERATION",
		tuning.InterParticleGravity: "SWARM_INTER_PARTICLE_GRAVITY",
	}
	for id, name := range envValues {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.setValue(tuning.ID(id), f)
	}
	return nil
}

func (c *Config) setValue(id tuning.ID, v float64) {
	if c.Tunable == nil {
		c.Tunable = make(map[string]Tunable)
	}
	t := c.Tunable[id.String()]
	t.Value = &v
	c.Tunable[id.String()] = t
}

// Validate checks ranges and bindings
func (c *Config) Validate() error {
	var errs []error

	if _, err := physics.ParseMode(c.Simulation.Mode); err != nil {
		errs = append(errs, fmt.Errorf("simulation.mode: %w", err))
	}
	if c.Simulation.Grid < 0 || c.Simulation.Grid > MaxGrid {
		errs = append(errs, fmt.Errorf("simulation.grid: %d outside [0, %d]", c.Simulation.Grid, MaxGrid))
	}
	if !(c.Simulation.Spacing > 0) || math.IsInf(c.Simulation.Spacing, 0) {
		errs = append(errs, fmt.Errorf("simulation.spacing: must be positive, got %v", c.Simulation.Spacing))
	}
	if !(c.Simulation.WorldPerCell > 0) || math.IsInf(c.Simulation.WorldPerCell, 0) {
		errs = append(errs, fmt.Errorf("simulation.world_per_cell: must be positive, got %v", c.Simulation.WorldPerCell))
	}
	if c.Simulation.TickMillis < 1 || c.Simulation.TickMillis > 1000 {
		errs = append(errs, fmt.Errorf("simulation.tick_ms: %d outside [1, 1000]", c.Simulation.TickMillis))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume: %v outside [0, 1]", c.Audio.Volume))
	}

	if _, err := c.Constants(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Constants resolves the tunable records with overrides applied
func (c *Config) Constants() ([]tuning.Constant, error) {
	defaults := tuning.Defaults()
	out := defaults[:]

	for name, t := range c.Tunable {
		id, ok := tuning.ParseID(name)
		if !ok {
			return nil, fmt.Errorf("tunable.%s: unknown constant", name)
		}
		rec := &out[id]
		if t.Value != nil {
			if math.IsNaN(*t.Value) || math.IsInf(*t.Value, 0) {
				return nil, fmt.Errorf("tunable.%s.value: must be finite", name)
			}
			rec.Value = *t.Value
		}
		if t.Delta != nil {
			if !(*t.Delta > 0) || math.IsInf(*t.Delta, 0) {
				return nil, fmt.Errorf("tunable.%s.delta: must be positive, got %v", name, *t.Delta)
			}
			rec.Delta = *t.Delta
		}
		if t.Increase != "" {
			r, err := parseKey(t.Increase)
			if err != nil {
				return nil, fmt.Errorf("tunable.%s.increase: %w", name, err)
			}
			rec.Increase = r
		}
		if t.Decrease != "" {
			r, err := parseKey(t.Decrease)
			if err != nil {
				return nil, fmt.Errorf("tunable.%s.decrease: %w", name, err)
			}
			rec.Decrease = r
		}
	}

	seen := make(map[rune]tuning.ID)
	for _, rec := range out {
		for _, k := range []rune{rec.Increase, rec.Decrease} {
			if prev, ok := seen[k]; ok {
				return nil, fmt.Errorf("tunable.%s: key %q already bound to %s", rec.ID, k, prev)
			}
			seen[k] = rec.ID
		}
	}
	return out, nil
}

// parseKey accepts exactly one printable rune, folded to lower case
func parseKey(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("key %q must be a single character", s)
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return 0, fmt.Errorf("key %q is not printable", s)
	}
	return unicode.ToLower(r), nil
}

// Mode returns the parsed attraction mode; call after Validate
func (c *Config) Mode() physics.Mode {
	m, _ := physics.ParseMode(c.Simulation.Mode)
	return m
}

// Tick returns the frame interval
func (c *Config) Tick() time.Duration {
	return time.Duration(c.Simulation.TickMillis) * time.Millisecond
}

// AudioConfig converts the audio section
func (c *Config) AudioConfig() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// Dump writes the effective configuration as TOML, with every tunable spelled out from store
func (c *Config) Dump(w io.Writer, store *tuning.Store) error {
	out := *c
	out.Tunable = make(map[string]Tunable, tuning.Count)
	store.Each(func(k tuning.Constant) {
		value, delta := k.Value, k.Delta
		out.Tunable[k.ID.String()] = Tunable{
			Value:    &value,
			Delta:    &delta,
			Increase: string(k.Increase),
			Decrease: string(k.Decrease),
		}
	})
	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("dump config: %w", err)
	}
	return nil
}
