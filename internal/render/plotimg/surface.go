package plotimg

import (
	"github.com/san-kum/animchart/internal/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// Surface keeps the plot built from the most recent snapshot.
type Surface struct {
	Style Style
	Plot  *plot.Plot
}

var _ chart.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{Style: DefaultStyle()}
}

func (s *Surface) Render(cfg chart.RenderConfig) error {
	p, err := Build(cfg, s.Style)
	if err != nil {
		return err
	}
	s.Plot = p
	return nil
}

// CanvasSurface draws every snapshot straight onto a vg canvas, inset by the
// style margin.
type CanvasSurface struct {
	Style  Style
	Canvas draw.Canvas
}

var _ chart.Surface = (*CanvasSurface)(nil)

func (s *CanvasSurface) Render(cfg chart.RenderConfig) error {
	p, err := Build(cfg, s.Style)
	if err != nil {
		return err
	}
	m := s.Style.Margin
	p.Draw(draw.Crop(s.Canvas, m, -m, m, -m))
	return nil
}
