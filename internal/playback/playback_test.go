package playback

import (
	"testing"
	"time"
)

// fakeNow returns a controllable clock source.
func fakeNow(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestClockAdvancesWhilePlaying(t *testing.T) {
	now := time.Unix(0, 0)

	c := NewClock(60, 1)
	c.now = fakeNow(&now)

	if got := c.Position(); got != 0 {
		t.Errorf("initial position = %v, want 0", got)
	}

	c.Play()

	now = now.Add(5 * time.Second)

	if got := c.Position(); got != 5 {
		t.Errorf("position after 5s = %v, want 5", got)
	}

	c.Pause()

	now = now.Add(10 * time.Second)

	if got := c.Position(); got != 5 {
		t.Errorf("position must not advance while paused, got %v", got)
	}
}

func TestClockRate(t *testing.T) {
	now := time.Unix(0, 0)

	c := NewClock(60, 2)
	c.now = fakeNow(&now)

	c.Play()

	now = now.Add(4 * time.Second)

	if got := c.Position(); got != 8 {
		t.Errorf("position at 2x after 4s = %v, want 8", got)
	}
}

func TestClockSeekClamps(t *testing.T) {
	c := NewClock(60, 1)

	c.Seek(-10)

	if got := c.Position(); got != 0 {
		t.Errorf("seek before start: position = %v, want 0", got)
	}

	c.Seek(100)

	if got := c.Position(); got != 60 {
		t.Errorf("seek past end: position = %v, want 60", got)
	}

	if c.Playing() {
		t.Error("a clock at end of media must not report playing")
	}
}

func TestClockStopsAtDuration(t *testing.T) {
	now := time.Unix(0, 0)

	c := NewClock(10, 1)
	c.now = fakeNow(&now)

	c.Play()

	now = now.Add(30 * time.Second)

	if got := c.Position(); got != 10 {
		t.Errorf("position past end = %v, want 10", got)
	}
}
