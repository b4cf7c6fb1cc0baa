package game

import "time"

// Clock is the time source of a Timer.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Timer measures a round's elapsed time, excluding paused intervals.
// Resuming shifts the start forward by the pause length.
type Timer struct {
	clock    Clock
	start    time.Time
	pausedAt time.Time
	paused   bool
}

// NewTimer creates a timer started now.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Timer{clock: clock, start: clock.Now()}
}

// Pause freezes the timer. It reports false if already paused.
func (t *Timer) Pause() bool {
	if t.paused {
		return false
	}
	t.paused = true
	t.pausedAt = t.clock.Now()
	return true
}

// Resume restarts a paused timer. It reports false if not paused.
func (t *Timer) Resume() bool {
	if !t.paused {
		return false
	}
	t.start = t.start.Add(t.clock.Now().Sub(t.pausedAt))
	t.paused = false
	return true
}

// Paused reports whether the timer is frozen.
func (t *Timer) Paused() bool {
	return t.paused
}

// Elapsed returns the running time.
func (t *Timer) Elapsed() time.Duration {
	if t.paused {
		return t.pausedAt.Sub(t.start)
	}
	return t.clock.Now().Sub(t.start)
}
