package playback

import "time"

// TimeSource provides wall-clock readings. Tests and frame exporters inject a
// Manual source to drive playback deterministically.
type TimeSource interface {
	Now() time.Time
}

type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// System reads the monotonic wall clock.
var System TimeSource = systemSource{}

// Manual is a TimeSource that only moves when told to.
type Manual struct {
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }

func (m *Manual) Set(t time.Time) { m.now = t }
