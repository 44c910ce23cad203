package chart

import (
	"fmt"

	"github.com/san-kum/animchart/internal/playback"
	"github.com/san-kum/animchart/internal/series"
)

type Chart struct {
	data   *series.Series
	clock  *playback.Clock
	config RenderConfig
}

type options struct {
	speed  float64
	seek   *float64
	source playback.TimeSource
}

type Option func(*options)

// WithSpeed sets the initial playback speed. 1.0 is real time.
func WithSpeed(speed float64) Option {
	return func(o *options) { o.speed = speed }
}

// WithTime seeks to t seconds on construction, leaving the chart paused.
func WithTime(t float64) Option {
	return func(o *options) { o.seek = &t }
}

func WithTimeSource(src playback.TimeSource) Option {
	return func(o *options) { o.source = src }
}

// New builds a chart over samples. The samples need not be sorted.
func New(samples []series.Sample, xUnit, yUnit, caption string, opts ...Option) (*Chart, error) {
	data, err := series.New(samples)
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", caption, err)
	}
	return FromSeries(data, xUnit, yUnit, caption, opts...), nil
}

// MustNew is like New but panics when samples is empty.
func MustNew(samples []series.Sample, xUnit, yUnit, caption string, opts ...Option) *Chart {
	c, err := New(samples, xUnit, yUnit, caption, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func FromSeries(data *series.Series, xUnit, yUnit, caption string, opts ...Option) *Chart {
	o := options{speed: 1.0, source: playback.System}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		data: data,
		clock: playback.New(data.Start(), data.End(),
			playback.WithTimeSource(o.source),
			playback.WithSpeed(o.speed),
		),
		config: RenderConfig{
			XUnit:   xUnit,
			YUnit:   yUnit,
			Caption: caption,
		},
	}
	c.config = c.fullSnapshot()
	if o.seek != nil {
		c.clock.Seek(*o.seek)
	}
	return c
}

func (c *Chart) Series() *series.Series { return c.data }

func (c *Chart) Start()  { c.clock.Start() }
func (c *Chart) Toggle() { c.clock.Toggle() }

// Stop ends playback and shows the full series again.
func (c *Chart) Stop() {
	c.clock.Stop()
	c.config = c.fullSnapshot()
}

// Seek sets the playback time in seconds. A stopped chart becomes paused at t.
func (c *Chart) Seek(t float64) { c.clock.Seek(t) }

// SeekBy moves the playback position by delta units of virtual time, keeping
// the playing or paused state. A stopped chart is paused at the new position.
func (c *Chart) SeekBy(delta float64) { c.clock.SeekBy(delta) }

func (c *Chart) SetSpeed(speed float64) { c.clock.SetSpeed(speed) }
func (c *Chart) Speed() float64         { return c.clock.Speed() }

func (c *Chart) IsPlaying() bool { return c.clock.IsPlaying() }
func (c *Chart) State() State    { return c.clock.State() }

func (c *Chart) StartTime() float64 { return c.data.Start() }
func (c *Chart) EndTime() float64   { return c.data.End() }

// CurrentTime returns the time being animated. Reading it after the end has
// been reached stops playback.
func (c *Chart) CurrentTime() float64 { return c.clock.Position() }

// Config returns the most recent snapshot without advancing playback.
func (c *Chart) Config() RenderConfig { return c.config }

// Frame refreshes the snapshot if playback is active and returns it.
func (c *Chart) Frame() RenderConfig {
	if c.clock.State() == Stopped {
		c.config.State = Stopped
		return c.config
	}
	t := c.clock.Position()
	c.config = c.snapshot(t, c.clock.State())
	return c.config
}

// FrameAt builds a snapshot for an explicit virtual time without touching
// playback state.
func (c *Chart) FrameAt(t float64) RenderConfig {
	return c.snapshot(t, c.clock.State())
}

// Draw renders the current frame to s. It is meant to be called once per
// host frame.
func (c *Chart) Draw(s Surface) error {
	return s.Render(c.Frame())
}

func (c *Chart) fullSnapshot() RenderConfig {
	full := c.data.Full()
	cfg := c.config
	cfg.Points = full.Points
	cfg.XRange = full.Bounds.X
	cfg.YRange = full.Bounds.Y
	cfg.Time = c.data.End()
	cfg.State = Stopped
	return cfg
}

func (c *Chart) snapshot(t float64, st State) RenderConfig {
	w := c.data.WindowAt(t)
	cfg := c.config
	cfg.Points = w.Points
	cfg.XRange = w.Bounds.X
	cfg.YRange = w.Bounds.Y
	cfg.Time = t
	cfg.State = st
	return cfg
}
