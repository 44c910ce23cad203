package plotimg

import (
	"fmt"
	"image/color"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds the visual parameters of a plotted chart.
type Style struct {
	Line     draw.LineStyle
	Grid     draw.LineStyle
	FontSize vg.Length
	Margin   vg.Length
}

func DefaultStyle() Style {
	return Style{
		Line: draw.LineStyle{
			Color: color.RGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0xff},
			Width: vg.Points(2),
		},
		Grid: draw.LineStyle{
			Color: color.Gray{Y: 0x9e},
			Width: vg.Points(1),
		},
		FontSize: vg.Points(10),
		Margin:   vg.Points(25),
	}
}

// Build turns a snapshot into a gonum plot. Zero-width ranges are widened so
// the axes stay drawable.
func Build(cfg chart.RenderConfig, st Style) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.Caption
	p.X.Label.Text = cfg.XUnit
	p.Y.Label.Text = cfg.YUnit
	for _, ts := range []*draw.TextStyle{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
	} {
		ts.Font.Size = st.FontSize
	}

	grid := plotter.NewGrid()
	grid.Vertical = st.Grid
	grid.Horizontal = st.Grid
	p.Add(grid)

	line, err := plotter.NewLine(toXYs(cfg.Points))
	if err != nil {
		return nil, fmt.Errorf("plotimg: line: %w", err)
	}
	line.LineStyle = st.Line
	p.Add(line)

	// Adding plotters widens the axes to their data range; pin them to the
	// snapshot's bounds instead.
	xr := cfg.XRange.Pad(0)
	yr := cfg.YRange.Pad(0)
	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min, yr.Max

	return p, nil
}

// toXYs drops non-finite points, which plotter.NewLine rejects.
func toXYs(pts []series.Point) plotter.XYs {
	xys := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if plotter.CheckFloats(pt.X, pt.Y) != nil {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	return xys
}
