package render

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/lixenwraith/gravity-swarm/tuning"
)

// FormatValue prints a constant without trailing zeros
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ConstantLines returns the two HUD lines for one constant: value, then its bindings
func ConstantLines(c tuning.Constant) (string, string) {
	return fmt.Sprintf("%s: %s", c.ID, FormatValue(c.Value)),
		fmt.Sprintf("%c to increase, %c to decrease", unicode.ToUpper(c.Increase), unicode.ToUpper(c.Decrease))
}

// StatusInfo is the one-line summary under the constants
type StatusInfo struct {
	Mode      string
	Particles int
	Paused    bool
	Audio     bool
	FPS       float64
	MaxSpeed  float64
	Clamped   int64
	Zoom      float64
}

func (s StatusInfo) String() string {
	state := "running"
	if s.Paused {
		state = "PAUSED"
	}
	audio := "off"
	if s.Audio {
		audio = "on"
	}
	return fmt.Sprintf("%s | mode %s | n=%d | vmax %.0f | clamped %d | fps %.0f | zoom %.2f | audio %s | p pause r reset q quit",
		state, s.Mode, s.Particles, s.MaxSpeed, s.Clamped, s.FPS, s.Zoom, audio)
}
