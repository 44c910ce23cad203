package gochart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	animchart "github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/series"
)

func TestRenderBuildsChart(t *testing.T) {
	s := NewSurface(400, 300)
	err := s.Render(animchart.RenderConfig{
		Points:  []series.Point{{X: 0, Y: 0}, {X: 1, Y: 3}},
		XRange:  series.Range{Min: 0, Max: 1},
		YRange:  series.Range{Min: 0, Max: 3},
		XUnit:   "s",
		YUnit:   "m",
		Caption: "distance",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s.Chart.Title != "distance" || s.Chart.XAxis.Name != "s" || s.Chart.YAxis.Name != "m" {
		t.Error("labels not applied")
	}
	if len(s.Chart.Series) != 1 {
		t.Fatalf("expected one series, got %d", len(s.Chart.Series))
	}

	var buf bytes.Buffer
	if err := s.Write(&buf, "svg"); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("expected svg output")
	}
}

func TestRenderSinglePoint(t *testing.T) {
	s := NewSurface(200, 200)
	err := s.Render(animchart.RenderConfig{
		Points: []series.Point{{X: 1, Y: 1}},
		XRange: series.Range{Min: 1, Max: 1},
		YRange: series.Range{Min: 1, Max: 1},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := filepath.Join(t.TempDir(), "one.png")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected png file, err=%v", err)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	s := NewSurface(10, 10)
	if err := s.Write(&bytes.Buffer{}, "bmp"); err == nil {
		t.Error("expected error")
	}
}
