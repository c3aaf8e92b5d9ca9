package parameter

import "time"

// Adjustment cue sounds
const (
	AudioSampleRate    = 44100
	AudioMasterVolume  = 0.5
	AudioBufferLatency = 100 * time.Millisecond

	// CueMinInterval rate-limits cues while a key is held
	CueMinInterval = 120 * time.Millisecond

	CueDuration = 40 * time.Millisecond
	CueAttack   = 2 * time.Millisecond
	CueRelease  = 25 * time.Millisecond

	// CueIncreaseFreq and CueDecreaseFreq are the tone pitches (Hz)
	CueIncreaseFreq = 1318.51 // E6
	CueDecreaseFreq = 659.25  // E5
)
