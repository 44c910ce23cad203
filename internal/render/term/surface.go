package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/series"
)

const axisPad = 0.05

// Styles controls the colors of a rendered chart.
type Styles struct {
	Caption lipgloss.Style
	Axis    lipgloss.Style
	Label   lipgloss.Style
	Line    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Caption: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Line:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

// Surface renders a chart snapshot as braille text. The result of the last
// Render is available from String.
type Surface struct {
	Width, Height int
	Styles        Styles

	canvas *Canvas
	out    string
}

var _ chart.Surface = (*Surface)(nil)

func NewSurface(width, height int) *Surface {
	if width < 8 {
		width = 8
	}
	if height < 2 {
		height = 2
	}
	return &Surface{
		Width:  width,
		Height: height,
		Styles: DefaultStyles(),
		canvas: NewCanvas(width, height),
	}
}

func (s *Surface) String() string { return s.out }

func (s *Surface) Canvas() *Canvas { return s.canvas }

func (s *Surface) Render(cfg chart.RenderConfig) error {
	if s.canvas == nil || s.canvas.Width != s.Width || s.canvas.Height != s.Height {
		s.canvas = NewCanvas(s.Width, s.Height)
	}
	s.canvas.Clear()

	xr := cfg.XRange.Pad(axisPad)
	yr := cfg.YRange.Pad(axisPad)
	plotLine(s.canvas, cfg.Points, xr, yr)

	s.out = s.layout(cfg, xr, yr)
	return nil
}

// plotLine maps points into canvas pixels and joins consecutive finite points.
func plotLine(c *Canvas, pts []series.Point, xr, yr series.Range) {
	pw, ph := float64(c.PixelWidth()-1), float64(c.PixelHeight()-1)
	havePrev := false
	var px, py int
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			havePrev = false
			continue
		}
		x := int(math.Round(xr.Fraction(p.X) * pw))
		y := int(math.Round(ph - yr.Fraction(p.Y)*ph))
		if havePrev {
			c.DrawLine(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
}

func (s *Surface) layout(cfg chart.RenderConfig, xr, yr series.Range) string {
	top, bottom := formatTick(yr.Max), formatTick(yr.Min)
	gutter := max(len(top), len(bottom))
	yUnit := []rune(cfg.YUnit)

	var b strings.Builder
	if cfg.Caption != "" {
		b.WriteString(strings.Repeat(" ", gutter+3))
		b.WriteString(s.Styles.Caption.Render(center(cfg.Caption, s.Width)))
		b.WriteString("\n")
	}

	// The y unit runs down the left edge, one rune per row.
	unitStart := (s.Height - len(yUnit)) / 2
	for row := 0; row < s.Height; row++ {
		unit := " "
		if i := row - unitStart; i >= 0 && i < len(yUnit) {
			unit = string(yUnit[i])
		}
		tick := ""
		switch row {
		case 0:
			tick = top
		case s.Height - 1:
			tick = bottom
		}
		b.WriteString(s.Styles.Label.Render(unit))
		b.WriteString(s.Styles.Label.Render(fmt.Sprintf("%*s", gutter, tick)))
		b.WriteString(s.Styles.Axis.Render(" │"))
		b.WriteString(s.Styles.Line.Render(s.canvas.Row(row)))
		b.WriteString("\n")
	}

	indent := strings.Repeat(" ", gutter+2)
	b.WriteString(indent)
	b.WriteString(s.Styles.Axis.Render("└" + strings.Repeat("─", s.Width)))
	b.WriteString("\n")

	left, right := formatTick(xr.Min), formatTick(xr.Max)
	gap := s.Width + 1 - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(indent)
	b.WriteString(s.Styles.Label.Render(left + strings.Repeat(" ", gap) + right))
	b.WriteString("\n")
	if cfg.XUnit != "" {
		b.WriteString(indent)
		b.WriteString(s.Styles.Label.Render(center(cfg.XUnit, s.Width+1)))
		b.WriteString("\n")
	}
	return b.String()
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

func center(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
