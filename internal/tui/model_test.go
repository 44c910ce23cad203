package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/playback"
	"github.com/san-kum/animchart/internal/series"
)

func newTestModel(t *testing.T) (Model, *playback.Manual) {
	t.Helper()
	src := playback.NewManual(time.Unix(1000, 0))
	samples := make([]series.Sample, 0, 11)
	for i := 0; i <= 10; i++ {
		samples = append(samples, series.Sample{X: float64(i), Y: float64(i * i), T: float64(i)})
	}
	c, err := chart.New(samples, "x", "y", "squares", chart.WithTimeSource(src))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(c, DefaultOptions()), src
}

func press(m Model, key tea.KeyMsg) Model {
	next, _ := m.Update(key)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickAdvancesPlayback(t *testing.T) {
	m, src := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Chart().IsPlaying() {
		t.Fatal("expected playing after enter")
	}

	src.Advance(3 * time.Second)
	next, cmd := m.Update(TickMsg(src.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("expected another tick to be scheduled")
	}

	cfg := m.Chart().Config()
	if len(cfg.Points) != 4 {
		t.Errorf("expected 4 visible points at t=3, got %d", len(cfg.Points))
	}
	if cfg.State != chart.Playing {
		t.Errorf("expected playing, got %v", cfg.State)
	}
}

func TestSpaceTogglesAndStopShowsAll(t *testing.T) {
	m, src := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	src.Advance(2 * time.Second)

	m = press(m, runes(" "))
	if m.Chart().State() != chart.Paused {
		t.Fatalf("expected paused, got %v", m.Chart().State())
	}
	paused := m.Chart().Config().Time

	src.Advance(5 * time.Second)
	m = press(m, runes(" "))
	if got := m.Chart().CurrentTime(); got < paused || got > paused+0.01 {
		t.Errorf("resume jumped from %f to %f", paused, got)
	}

	m = press(m, runes("s"))
	if m.Chart().State() != chart.Stopped {
		t.Errorf("expected stopped, got %v", m.Chart().State())
	}
	if got := len(m.Chart().Config().Points); got != 11 {
		t.Errorf("expected all 11 points after stop, got %d", got)
	}
}

func TestSpeedKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, runes("+"))
	m = press(m, runes("+"))
	if m.Chart().Speed() != 4 {
		t.Errorf("expected speed 4, got %f", m.Chart().Speed())
	}
	m = press(m, runes("-"))
	if m.Chart().Speed() != 2 {
		t.Errorf("expected speed 2, got %f", m.Chart().Speed())
	}
	for i := 0; i < 20; i++ {
		m = press(m, runes("+"))
	}
	if m.Chart().Speed() != maxSpeed {
		t.Errorf("expected speed capped at %f, got %f", maxSpeed, m.Chart().Speed())
	}
}

func TestSeekKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Chart().State() != chart.Paused {
		t.Fatalf("seek from stopped should pause, got %v", m.Chart().State())
	}
	if got := m.Chart().CurrentTime(); got < 1 || got > 1.01 {
		t.Errorf("expected t≈1, got %f", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Chart().CurrentTime(); got > 0.01 {
		t.Errorf("expected seek to clamp at start, got %f", got)
	}
}

func TestThemeCycle(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.theme.Name
	for range Themes {
		m = press(m, runes("t"))
	}
	if m.theme.Name != first {
		t.Errorf("expected to cycle back to %s, got %s", first, m.theme.Name)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"SQUARES", "STOPPED", "Speed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.surface.Width != 120-statsWidth-12 || m.surface.Height != 32 {
		t.Errorf("unexpected surface size %dx%d", m.surface.Width, m.surface.Height)
	}
}

func TestYTrace(t *testing.T) {
	pts := make([]series.Point, 100)
	for i := range pts {
		pts[i] = series.Point{X: float64(i), Y: float64(i)}
	}
	trace := yTrace(chart.RenderConfig{Points: pts}, 10)
	if len(trace) != 10 || trace[0] != 0 || trace[9] != 99 {
		t.Errorf("unexpected trace %v", trace)
	}
	if got := yTrace(chart.RenderConfig{Points: pts[:3]}, 10); len(got) != 3 {
		t.Errorf("expected 3 values, got %d", len(got))
	}
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("expected fallback to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
