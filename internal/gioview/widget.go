// Package gioview hosts an animated chart inside a gio layout. The widget
// draws straight onto the frame's op list through gonum's gio canvas.
package gioview

import (
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/render/plotimg"
)

const (
	seekStep = 1.0
	minSpeed = 1.0 / 64
	maxSpeed = 64.0
)

type PlotWidget struct {
	Chart *chart.Chart
	Style plotimg.Style
	DPI   int

	err error
}

func NewPlotWidget(c *chart.Chart, dpi int) *PlotWidget {
	if dpi <= 0 {
		dpi = 128
	}
	return &PlotWidget{
		Chart: c,
		Style: plotimg.DefaultStyle(),
		DPI:   dpi,
	}
}

// Err returns the most recent render error.
func (p *PlotWidget) Err() error { return p.err }

// Layout draws the current frame and keeps requesting frames while the chart
// is playing.
func (p *PlotWidget) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	wAdjusted, hAdjusted := p.canvasSize(size.X, size.Y)
	cnv := vggio.New(gtx, wAdjusted, hAdjusted, vggio.UseDPI(p.DPI))

	surface := &plotimg.CanvasSurface{Style: p.Style, Canvas: draw.New(cnv)}
	p.err = p.Chart.Draw(surface)

	if p.Chart.IsPlaying() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}

// canvasSize converts a pixel size into plot lengths at the widget DPI.
func (p *PlotWidget) canvasSize(px, py int) (vg.Length, vg.Length) {
	w := vg.Points(float64(px) * vg.Inch.Points() / float64(p.DPI))
	h := vg.Points(float64(py) * vg.Inch.Points() / float64(p.DPI))
	return w, h
}

// HandleKey applies a playback key. It reports whether the key asks to close
// the window.
func (p *PlotWidget) HandleKey(e key.Event) (quit bool) {
	if e.State != key.Press {
		return false
	}
	switch e.Name {
	case "Q", key.NameEscape:
		return true
	case "Space":
		p.Chart.Toggle()
	case "S":
		p.Chart.Stop()
	case key.NameReturn, key.NameEnter:
		p.Chart.Start()
	case key.NameLeftArrow:
		p.Chart.SeekBy(-seekStep)
	case key.NameRightArrow:
		p.Chart.SeekBy(seekStep)
	case "+", "=":
		p.Chart.SetSpeed(min(p.Chart.Speed()*2, maxSpeed))
	case "-":
		p.Chart.SetSpeed(max(p.Chart.Speed()/2, minSpeed))
	}
	return false
}
