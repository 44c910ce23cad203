package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/render/term"
)

const (
	statsWidth  = 38
	traceWidth  = 30
	traceHeight = 5
	seekStep    = 1.0
	minSpeed    = 1.0 / 64
	maxSpeed    = 64.0
)

type TickMsg time.Time

// Options configures the player.
type Options struct {
	FPS    int
	Width  int
	Height int
	Theme  string
}

func DefaultOptions() Options {
	return Options{FPS: 30, Width: 72, Height: 20, Theme: "cyberpunk"}
}

// Model hosts a chart in a bubbletea program. The chart is drawn once per
// tick and after every key that changes playback.
type Model struct {
	chart    *chart.Chart
	surface  *term.Surface
	theme    Theme
	fps      int
	showHelp bool
	err      error
}

func NewModel(c *chart.Chart, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	theme := GetTheme(opts.Theme)
	surface := term.NewSurface(opts.Width, opts.Height)
	surface.Styles = theme.ChartStyles()

	m := Model{
		chart:   c,
		surface: surface,
		theme:   theme,
		fps:     opts.FPS,
	}
	m.draw()
	return m
}

func (m Model) Chart() *chart.Chart { return m.chart }

// Err returns the last render error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles playback keys and advances the chart on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.chart.Toggle()
		case "s":
			m.chart.Stop()
		case "enter":
			m.chart.Start()
		case "left", "h":
			m.chart.SeekBy(-seekStep)
		case "right", "l":
			m.chart.SeekBy(seekStep)
		case "+", "=":
			m.chart.SetSpeed(min(m.chart.Speed()*2, maxSpeed))
		case "-", "_":
			m.chart.SetSpeed(max(m.chart.Speed()/2, minSpeed))
		case "t":
			m.theme = m.theme.next()
			m.surface.Styles = m.theme.ChartStyles()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case tea.WindowSizeMsg:
		m.surface.Width = max(msg.Width-statsWidth-12, 8)
		m.surface.Height = max(msg.Height-8, 4)
		m.draw()
	case TickMsg:
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	if err := m.chart.Draw(m.surface); err != nil {
		m.err = err
	}
}

// View renders the chart next to the status panel.
func (m Model) View() string {
	cfg := m.chart.Config()

	canvasStyle := lipgloss.NewStyle().Padding(1, 2)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).
		Width(statsWidth)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)

	var s strings.Builder
	title := cfg.Caption
	if title == "" {
		title = "chart"
	}
	s.WriteString(headerStyle.Render(strings.ToUpper(title)) + "\n")
	s.WriteString(m.statusStyle(cfg.State).Render(strings.ToUpper(cfg.State.String())) + "\n\n")

	start, end := m.chart.StartTime(), m.chart.EndTime()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f / %.2f", cfg.Time, end)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%gx", m.chart.Speed())) + "\n")
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d / %d", len(cfg.Points), m.chart.Series().Len())) + "\n")
	progress := 1.0
	if end > start {
		progress = (cfg.Time - start) / (end - start)
	}
	s.WriteString(labelStyle.Render("Progress") + m.progressBar(progress, 16) + "\n")

	if trace := yTrace(cfg, traceWidth); len(trace) > 1 {
		graph := asciigraph.Plot(trace, asciigraph.Height(traceHeight), asciigraph.Width(traceWidth), asciigraph.Caption(cfg.YUnit))
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause ENTER:Play S:Stop\n←→:Seek +-:Speed T:Theme\n?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.surface.String()),
		statsStyle.Render(s.String()),
	)
	if m.showHelp {
		return helpText + "\n\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  Enter    - Play from the beginning  ║
║  S        - Stop, show full series   ║
║  ←/→      - Seek one second          ║
║  +/-      - Double/halve speed       ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

func (m Model) statusStyle(st chart.State) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch st {
	case chart.Playing:
		return style.Foreground(m.theme.Success)
	case chart.Paused:
		return style.Foreground(m.theme.Warning)
	default:
		return style.Foreground(m.theme.Muted)
	}
}

func (m Model) progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(filled, width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(bar)
}

// yTrace samples at most n y values evenly from the visible points.
func yTrace(cfg chart.RenderConfig, n int) []float64 {
	pts := cfg.Points
	if len(pts) <= n {
		out := make([]float64, len(pts))
		for i, p := range pts {
			out[i] = p.Y
		}
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = pts[i*(len(pts)-1)/(n-1)].Y
	}
	return out
}
