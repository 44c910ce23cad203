package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/config"
	"github.com/san-kum/animchart/internal/dataset"
	"github.com/san-kum/animchart/internal/demo"
)

const defaultDemo = "lorenz"

// loadConfig layers the config file, then the demo preset, then any flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		name := demoName
		if name == "" {
			name = defaultDemo
		}
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg.Playback = p.Playback
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Playback.Speed = speed
	}
	if flags.Changed("time") {
		t := startTime
		cfg.Playback.StartTime = &t
	}
	if flags.Changed("fps") {
		cfg.View.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDataset reads the file argument, falling back to a built-in demo.
func loadDataset(args []string) (*dataset.Dataset, error) {
	if len(args) > 0 && demoName != "" {
		return nil, fmt.Errorf("give either a file or --demo, not both")
	}
	if len(args) > 0 {
		return dataset.Load(args[0])
	}

	name := demoName
	if name == "" {
		name = defaultDemo
	}
	d, err := demo.Get(name)
	if err != nil {
		return nil, err
	}
	return d.Generate(context.Background(), 0)
}

func buildChart(ds *dataset.Dataset, cfg *config.Config, extra ...chart.Option) (*chart.Chart, error) {
	opts := []chart.Option{chart.WithSpeed(cfg.Playback.Speed)}
	if cfg.Playback.StartTime != nil {
		opts = append(opts, chart.WithTime(*cfg.Playback.StartTime))
	}
	opts = append(opts, extra...)

	xUnit, yUnit, caption := cfg.Labels(ds.XUnit, ds.YUnit, ds.Caption)
	return chart.New(ds.Samples, xUnit, yUnit, caption, opts...)
}

// autoplay starts playback, resuming from the seek position if one was set.
func autoplay(c *chart.Chart, cfg *config.Config) {
	if !cfg.Playback.Autoplay {
		return
	}
	switch c.State() {
	case chart.Paused:
		c.Toggle()
	case chart.Stopped:
		c.Start()
	}
}

// writeFile creates path and hands it to write, reporting close errors too.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	return write(f)
}

// stillFrame picks the snapshot for a still image: an explicit time when at is
// set, else the configured start time, else the full series.
func stillFrame(c *chart.Chart, cfg *config.Config, at float64) chart.RenderConfig {
	switch {
	case !math.IsNaN(at):
		return c.FrameAt(at)
	case cfg.Playback.StartTime != nil:
		return c.FrameAt(c.CurrentTime())
	default:
		return c.Config()
	}
}
