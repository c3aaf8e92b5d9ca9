package engine

import (
	"testing"
	"time"
)

func TestClockStep(t *testing.T) {
	mock := NewMockTime(time.Unix(1000, 0))
	c := NewClock(mock, 100*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if got := c.Step(); got != 0.016 {
		t.Errorf("Expected dt 0.016, got %v", got)
	}

	mock.Advance(5 * time.Second)
	if got := c.Step(); got != 0.1 {
		t.Errorf("Expected stall clamped to 0.1, got %v", got)
	}

	if got := c.Elapsed(); got != 116*time.Millisecond {
		t.Errorf("Expected elapsed 116ms, got %v", got)
	}
}

func TestClockPause(t *testing.T) {
	mock := NewMockTime(time.Unix(1000, 0))
	c := NewClock(mock, time.Second)

	if !c.TogglePause() {
		t.Fatal("Expected paused after toggle")
	}
	mock.Advance(50 * time.Millisecond)
	if got := c.Step(); got != 0 {
		t.Errorf("Expected zero dt while paused, got %v", got)
	}

	mock.Advance(500 * time.Millisecond)
	c.Resume()
	mock.Advance(20 * time.Millisecond)
	if got := c.Step(); got != 0.02 {
		t.Errorf("Expected paused time not replayed, got dt %v", got)
	}

	c.Pause()
	c.Pause()
	c.Resume()
	if c.IsPaused() {
		t.Error("Expected single Resume to undo repeated Pause")
	}
}

func TestClockBackwardsTime(t *testing.T) {
	mock := NewMockTime(time.Unix(1000, 0))
	c := NewClock(mock, time.Second)

	mock.Advance(-time.Second)
	if got := c.Step(); got != 0 {
		t.Errorf("Expected zero dt for backwards time, got %v", got)
	}
}
