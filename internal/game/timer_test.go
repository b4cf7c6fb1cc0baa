package game

import (
	"testing"
	"time"
)

func TestTimerExcludesPause(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	clock.Advance(3 * time.Second)
	if !timer.Pause() {
		t.Fatal("Pause() returned false")
	}
	if timer.Pause() {
		t.Error("second Pause() should be rejected")
	}

	clock.Advance(10 * time.Second)
	if got := timer.Elapsed(); got != 3*time.Second {
		t.Errorf("paused elapsed = %v, expected 3s", got)
	}

	if !timer.Resume() {
		t.Fatal("Resume() returned false")
	}
	clock.Advance(2 * time.Second)
	if got := timer.Elapsed(); got != 5*time.Second {
		t.Errorf("elapsed = %v, expected 5s", got)
	}
	if timer.Resume() {
		t.Error("Resume() on a running timer should be rejected")
	}
}
