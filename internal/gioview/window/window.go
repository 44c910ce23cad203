// Package window opens a desktop window that plays a chart.
package window

import (
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/gioview"
)

type Options struct {
	Title         string
	Width, Height int
	DPI           int
	Autoplay      bool
}

func DefaultOptions() Options {
	return Options{Title: "animchart", Width: 1024, Height: 768, DPI: 128, Autoplay: true}
}

// Run shows c in a window. It takes over the main goroutine and exits the
// process when the window is closed.
func Run(c *chart.Chart, opts Options) error {
	widget := gioview.NewPlotWidget(c, opts.DPI)
	if opts.Autoplay && c.State() == chart.Stopped {
		c.Start()
	}

	go func() {
		win := app.NewWindow(
			app.Title(opts.Title),
			app.Size(
				unit.Px(float32(opts.Width)),
				unit.Px(float32(opts.Height)),
			),
		)
		defer win.Close()

		ops := new(op.Ops)
		for e := range win.Events() {
			switch e := e.(type) {
			case system.FrameEvent:
				ops.Reset()
				gtx := layout.NewContext(ops, e)
				layout.UniformInset(unit.Dp(30)).Layout(gtx, widget.Layout)
				e.Frame(ops)
				if err := widget.Err(); err != nil {
					fmt.Fprintln(os.Stderr, "render:", err)
				}

			case key.Event:
				if widget.HandleKey(e) {
					win.Close()
				}
				win.Invalidate()

			case system.DestroyEvent:
				if e.Err != nil {
					fmt.Fprintln(os.Stderr, e.Err)
					os.Exit(1)
				}
				os.Exit(0)
			}
		}
	}()

	app.Main()
	return nil
}
