package parameter

import "time"

// Loop & Timing
const (
	// FrameUpdateInterval is the tick/render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta bounds dt after a stall (suspend, debugger) so one tick cannot integrate seconds of motion
	MaxTickDelta = 100 * time.Millisecond

	// KeyRepeatDelay is the longest wait from a press to its first auto-repeat
	// Terminals report repeats but no releases; must exceed the typical initial repeat delay
	KeyRepeatDelay = 550 * time.Millisecond

	// KeyRepeatGap is how long a repeating key stays held after its latest repeat event
	KeyRepeatGap = 120 * time.Millisecond

	// EventBufferSize is the terminal event channel capacity
	EventBufferSize = 256
)
