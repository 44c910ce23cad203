package plotimg

import (
	"bytes"
	"errors"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/playback"
	"github.com/san-kum/animchart/internal/series"
	"gonum.org/v1/plot/vg"
)

func snapshot() chart.RenderConfig {
	return chart.RenderConfig{
		Points:  []series.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: math.NaN()}},
		XRange:  series.Range{Min: 0, Max: 2},
		YRange:  series.Range{Min: 0, Max: 2},
		XUnit:   "x",
		YUnit:   "y",
		Caption: "test",
	}
}

func TestBuildPinsAxes(t *testing.T) {
	p, err := Build(snapshot(), DefaultStyle())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.X.Min != 0 || p.X.Max != 2 || p.Y.Min != 0 || p.Y.Max != 2 {
		t.Errorf("unexpected axes x=[%f,%f] y=[%f,%f]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
	if p.Title.Text != "test" || p.X.Label.Text != "x" || p.Y.Label.Text != "y" {
		t.Error("labels not applied")
	}
}

func TestBuildWidensDegenerateRange(t *testing.T) {
	cfg := chart.RenderConfig{
		Points: []series.Point{{X: 3, Y: 4}},
		XRange: series.Range{Min: 3, Max: 3},
		YRange: series.Range{Min: 4, Max: 4},
	}
	p, err := Build(cfg, DefaultStyle())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.X.Max <= p.X.Min || p.Y.Max <= p.Y.Min {
		t.Errorf("degenerate axes x=[%f,%f] y=[%f,%f]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
}

func TestSavePlot(t *testing.T) {
	s := NewSurface()
	if err := s.Render(snapshot()); err != nil {
		t.Fatalf("render: %v", err)
	}

	dir := t.TempDir()
	for _, name := range []string{"chart.png", "chart.svg"} {
		path := filepath.Join(dir, name)
		if err := SavePlot(s.Plot, vg.Points(300), vg.Points(200), path); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if err := SavePlot(s.Plot, vg.Points(10), vg.Points(10), filepath.Join(dir, "noext")); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestCombineErrors(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")
	if combineErrors(nil, nil) != nil {
		t.Error("expected nil")
	}
	if got := combineErrors(nil, a); got != a {
		t.Errorf("expected a, got %v", got)
	}
	got := combineErrors(a, b)
	if !errors.Is(got, a) || !errors.Is(got, b) {
		t.Errorf("expected both errors, got %v", got)
	}
}

func TestRenderFramesAndEncode(t *testing.T) {
	src := playback.NewManual(time.Unix(0, 0))
	c := chart.MustNew([]series.Sample{
		{X: 0, Y: 0, T: 0},
		{X: 1, Y: 1, T: 0.5},
		{X: 2, Y: 0, T: 1},
	}, "x", "y", "frames", chart.WithTimeSource(src))

	opts := GIFOptions{FPS: 4, Width: vg.Points(240), Height: vg.Points(160), DPI: 48, MaxFrames: 100}
	frames, err := RenderFrames(c, src, opts, DefaultStyle())
	if err != nil {
		t.Fatalf("render frames: %v", err)
	}
	// 0, 0.25, 0.5, 0.75 and the final frame at 1.0.
	if len(frames) != 5 {
		t.Errorf("expected 5 frames, got %d", len(frames))
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, opts.FPS); err != nil {
		t.Fatalf("encode: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != len(frames) {
		t.Errorf("expected %d gif frames, got %d", len(frames), len(anim.Image))
	}
}

func TestRenderFramesLimit(t *testing.T) {
	src := playback.NewManual(time.Unix(0, 0))
	c := chart.MustNew([]series.Sample{{T: 0}, {X: 1, Y: 1, T: 100}}, "", "", "", chart.WithTimeSource(src))

	opts := GIFOptions{FPS: 1, Width: vg.Points(200), Height: vg.Points(150), DPI: 24, MaxFrames: 3}
	if _, err := RenderFrames(c, src, opts, DefaultStyle()); !errors.Is(err, ErrTooManyFrames) {
		t.Errorf("expected ErrTooManyFrames, got %v", err)
	}
}
