// Package playback defines the boundary to the media player that reports
// playhead positions. The timeline engine never reads a clock; every time
// value it sees comes in through this interface.
package playback

import "time"

// Player reports the state of a media playback source. Positions are in
// seconds and may jump backwards on seek; Duration may be refined as the
// source learns the true media length.
type Player interface {
	Position() float64
	Duration() float64
	Playing() bool
	Play()
	Pause()
	Seek(t float64)
}

// Clock is a wall-clock driven Player used to review a recording without a
// real decoder attached: while playing, the position advances by elapsed
// real time multiplied by Rate.
type Clock struct {
	lastResume time.Time
	duration   float64
	elapsed    float64
	rate       float64
	playing    bool
	now        func() time.Time
}

// NewClock returns a paused Clock positioned at zero. A rate below or equal
// to zero falls back to real time.
func NewClock(duration, rate float64) *Clock {
	if rate <= 0 {
		rate = 1
	}

	return &Clock{
		duration: duration,
		rate:     rate,
		now:      time.Now,
	}
}

func (c *Clock) Position() float64 {
	pos := c.elapsed
	if c.playing {
		pos += c.now().Sub(c.lastResume).Seconds() * c.rate
	}

	if pos > c.duration {
		return c.duration
	}

	return pos
}

func (c *Clock) Duration() float64 {
	return c.duration
}

func (c *Clock) Playing() bool {
	return c.playing && c.Position() < c.duration
}

func (c *Clock) Play() {
	if c.playing {
		return
	}

	c.lastResume = c.now()
	c.playing = true
}

func (c *Clock) Pause() {
	if !c.playing {
		return
	}

	c.elapsed = c.Position()
	c.playing = false
}

// Seek moves the playhead, clamped to [0, Duration].
func (c *Clock) Seek(t float64) {
	if t < 0 {
		t = 0
	}

	if t > c.duration {
		t = c.duration
	}

	c.elapsed = t

	if c.playing {
		c.lastResume = c.now()
	}
}
