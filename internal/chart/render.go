package chart

import "github.com/san-kum/animchart/internal/series"

// RenderConfig is the snapshot handed to a Surface for one frame. Points
// aliases the chart's sample storage and must be treated as read-only.
type RenderConfig struct {
	Points  []series.Point
	XRange  series.Range
	YRange  series.Range
	XUnit   string
	YUnit   string
	Caption string

	Time  float64
	State State
}

// Surface renders a snapshot.
type Surface interface {
	Render(cfg RenderConfig) error
}

// SurfaceFunc adapts an ordinary function to a Surface.
type SurfaceFunc func(cfg RenderConfig) error

func (f SurfaceFunc) Render(cfg RenderConfig) error { return f(cfg) }
