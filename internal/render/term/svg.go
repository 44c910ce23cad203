package term

import (
	"fmt"
	"io"
	"strings"
)

// SVG draws every set sub-pixel of the canvas as a dot, scale units apart.
func (c *Canvas) SVG(scale float64, fg, bg string) string {
	width := float64(c.PixelWidth()) * scale
	height := float64(c.PixelHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, bg, fg))

	dotRadius := scale * 0.4
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if !c.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG writes the canvas of the last rendered frame.
func (s *Surface) WriteSVG(w io.Writer, scale float64) error {
	_, err := io.WriteString(w, s.canvas.SVG(scale, "#b71c1c", "#ffffff"))
	return err
}
