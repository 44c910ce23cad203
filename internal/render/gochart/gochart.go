// Package gochart renders chart snapshots with go-chart. It is the lighter of
// the two still-image engines and only supports PNG and SVG.
package gochart

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	animchart "github.com/san-kum/animchart/internal/chart"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var lineColor = drawing.ColorFromHex("b71c1c")

// Surface builds a go-chart definition for each snapshot.
type Surface struct {
	Width, Height int
	Chart         chart.Chart
}

var _ animchart.Surface = (*Surface)(nil)

func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height}
}

func (s *Surface) Render(cfg animchart.RenderConfig) error {
	xs := make([]float64, 0, len(cfg.Points))
	ys := make([]float64, 0, len(cfg.Points))
	for _, p := range cfg.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return fmt.Errorf("gochart: no finite points to draw")
	}
	// go-chart needs a segment to draw a line.
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	xr := cfg.XRange.Pad(0)
	yr := cfg.YRange.Pad(0)
	s.Chart = chart.Chart{
		Title:  cfg.Caption,
		Width:  s.Width,
		Height: s.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 25, Left: 25, Right: 25, Bottom: 25},
		},
		XAxis: chart.XAxis{
			Name:  cfg.XUnit,
			Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name:  cfg.YUnit,
			Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    cfg.Caption,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}
	return nil
}

// Write renders the last snapshot in the given format ("png" or "svg").
func (s *Surface) Write(w io.Writer, format string) error {
	var provider chart.RendererProvider
	switch strings.ToLower(format) {
	case "png":
		provider = chart.PNG
	case "svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("gochart: unsupported format %q", format)
	}
	return s.Chart.Render(provider, w)
}

func (s *Surface) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return s.Write(f, format)
}
