package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/animchart/internal/chart"
)

// Run plays c in the terminal until the user quits.
func Run(c *chart.Chart, opts Options) error {
	p := tea.NewProgram(NewModel(c, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
