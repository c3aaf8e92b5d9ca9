package engine

import "time"

// Clock turns wall time into per-tick dt with pause support
// Simulation time only advances while running; a stall longer than maxDelta is truncated
type Clock struct {
	provider TimeProvider
	maxDelta time.Duration

	last    time.Time
	paused  bool
	elapsed time.Duration // simulated time
}

// NewClock creates a running clock starting at provider.Now()
func NewClock(provider TimeProvider, maxDelta time.Duration) *Clock {
	return &Clock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Step returns the dt in seconds since the previous Step
// Returns 0 while paused; wall time spent paused is never replayed
func (c *Clock) Step() float64 {
	now := c.provider.Now()
	d := now.Sub(c.last)
	c.last = now

	if c.paused || d <= 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	c.elapsed += d
	return d.Seconds()
}

func (c *Clock) Pause() {
	if !c.paused {
		c.paused = true
	}
}

// Resume restarts the clock; the next Step measures from now
func (c *Clock) Resume() {
	if c.paused {
		c.paused = false
		c.last = c.provider.Now()
	}
}

// TogglePause flips pause state and returns the new state
func (c *Clock) TogglePause() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

func (c *Clock) IsPaused() bool { return c.paused }

// Elapsed returns total simulated time
func (c *Clock) Elapsed() time.Duration { return c.elapsed }
