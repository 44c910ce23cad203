package playback

import (
	"fmt"
	"math"
	"time"
)

// MinDelta is added to every elapsed reading so a running clock never reports
// a zero-width window.
const MinDelta = 0.000_010

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Clock maps wall-clock time onto a virtual timeline [start, end].
//
// The clock is owned by a single caller and is not safe for concurrent use.
// Every operation reads its time source at most once.
type Clock struct {
	start, end float64
	speed      float64
	source     TimeSource

	running      bool
	runningSince time.Time
	paused       bool
	pausedAt     time.Time
}

type Option func(*Clock)

func WithTimeSource(src TimeSource) Option {
	return func(c *Clock) {
		if src != nil {
			c.source = src
		}
	}
}

func WithSpeed(speed float64) Option {
	return func(c *Clock) { c.speed = speed }
}

// New creates a stopped clock over the timeline [start, end].
func New(start, end float64, opts ...Option) *Clock {
	c := &Clock{
		start:  start,
		end:    end,
		speed:  1.0,
		source: System,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clock) TimelineStart() float64 { return c.start }
func (c *Clock) TimelineEnd() float64   { return c.end }

func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed changes the multiplier applied to elapsed wall-clock time. A running
// clock is rebased so that only time elapsed after the change is scaled by the
// new factor. A zero speed on either side cannot be rebased and is applied as is.
func (c *Clock) SetSpeed(speed float64) {
	if c.running && c.speed != 0 && speed != 0 {
		now := c.source.Now()
		if c.paused {
			now = c.pausedAt
		}
		elapsed := now.Sub(c.runningSince).Seconds() * c.speed / speed
		c.runningSince = now.Add(-seconds(elapsed))
	}
	c.speed = speed
}

// Seek positions the clock so that the next reading has t seconds of elapsed
// wall-clock time. A stopped clock becomes paused at t; a running clock keeps
// its playing or paused sub-state.
func (c *Clock) Seek(t float64) {
	c.seekAt(c.source.Now(), t)
}

// SeekBy moves the position by delta units of virtual time, reading the time
// source once. The result is floored at the timeline start.
func (c *Clock) SeekBy(delta float64) {
	now := c.source.Now()
	virtual := 0.0
	if c.running {
		pos, done := c.PositionAt(now)
		virtual = pos - c.start
		if !done {
			virtual -= MinDelta
		}
	}
	elapsed := virtual + delta
	if c.speed > 0 {
		elapsed /= c.speed
	}
	c.seekAt(now, max(elapsed, 0))
}

func (c *Clock) seekAt(now time.Time, t float64) {
	since := now.Add(-seconds(t))
	if !c.running {
		c.running, c.runningSince = true, since
		c.paused, c.pausedAt = true, now
		return
	}
	c.runningSince = since
	if c.paused {
		c.pausedAt = now
	}
}

// Start begins playback from the timeline start, discarding any position.
func (c *Clock) Start() {
	c.running, c.runningSince = true, c.source.Now()
	c.paused, c.pausedAt = false, time.Time{}
}

func (c *Clock) Stop() {
	c.running, c.runningSince = false, time.Time{}
	c.paused, c.pausedAt = false, time.Time{}
}

// Toggle starts a stopped clock, pauses a playing one and resumes a paused
// one. Time spent paused is excluded from elapsed time.
func (c *Clock) Toggle() {
	if !c.running {
		c.Start()
		return
	}
	now := c.source.Now()
	if c.paused {
		c.runningSince = c.runningSince.Add(now.Sub(c.pausedAt))
		c.paused, c.pausedAt = false, time.Time{}
		return
	}
	c.paused, c.pausedAt = true, now
}

func (c *Clock) IsPlaying() bool { return c.running && !c.paused }

func (c *Clock) State() State {
	switch {
	case !c.running:
		return Stopped
	case c.paused:
		return Paused
	default:
		return Playing
	}
}

// PositionAt reports the virtual time at wall-clock instant now without
// changing state. done is true when the position has reached the timeline end.
func (c *Clock) PositionAt(now time.Time) (pos float64, done bool) {
	if !c.running {
		return c.start, false
	}
	elapsed := now.Sub(c.runningSince)
	if c.paused {
		elapsed = c.pausedAt.Sub(c.runningSince)
	}
	scaled := c.speed * elapsed.Seconds()
	if scaled < 0 {
		scaled = 0
	}
	delta := MinDelta + scaled
	if c.end-c.start > delta {
		return c.start + delta, false
	}
	return c.end, true
}

// Tick reads the clock and stops it if the timeline end has been reached.
func (c *Clock) Tick() (pos float64, finished bool) {
	pos, done := c.PositionAt(c.source.Now())
	if done {
		c.Stop()
	}
	return pos, done
}

// Position returns the current virtual time. Reading past the end stops the
// clock.
func (c *Clock) Position() float64 {
	pos, _ := c.Tick()
	return pos
}

func seconds(t float64) time.Duration {
	return time.Duration(math.Round(t * float64(time.Second)))
}
