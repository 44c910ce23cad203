package plotimg

import (
	"errors"
	"image"
	"image/color/palette"
	imagedraw "image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/playback"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrTooManyFrames = errors.New("plotimg: animation exceeds frame limit")

type GIFOptions struct {
	FPS           int
	Width, Height vg.Length
	DPI           int
	MaxFrames     int
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		FPS:       20,
		Width:     vg.Points(480),
		Height:    vg.Points(320),
		DPI:       96,
		MaxFrames: 2000,
	}
}

// RenderFrames plays c from the start, advancing src by one frame interval
// between draws, until playback finishes. c must have been built with src as
// its time source.
func RenderFrames(c *chart.Chart, src *playback.Manual, opts GIFOptions, style Style) ([]image.Image, error) {
	if opts.FPS <= 0 {
		opts.FPS = DefaultGIFOptions().FPS
	}
	step := time.Second / time.Duration(opts.FPS)

	var frames []image.Image
	c.Start()
	for {
		cnv := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
		surface := &CanvasSurface{Style: style, Canvas: draw.New(cnv)}
		if err := c.Draw(surface); err != nil {
			return nil, err
		}
		frames = append(frames, cnv.Image())
		if !c.IsPlaying() {
			return frames, nil
		}
		if opts.MaxFrames > 0 && len(frames) >= opts.MaxFrames {
			return nil, ErrTooManyFrames
		}
		src.Advance(step)
	}
}

// EncodeGIF writes frames as a looping animation.
func EncodeGIF(w io.Writer, frames []image.Image, fps int) error {
	if fps <= 0 {
		fps = DefaultGIFOptions().FPS
	}
	delay := 100 / fps
	if delay < 2 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		b := frame.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		imagedraw.FloydSteinberg.Draw(pal, b, frame, b.Min)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
