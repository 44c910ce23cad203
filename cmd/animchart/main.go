package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/animchart/internal/analysis"
	"github.com/san-kum/animchart/internal/chart"
	"github.com/san-kum/animchart/internal/config"
	"github.com/san-kum/animchart/internal/dataset"
	"github.com/san-kum/animchart/internal/demo"
	"github.com/san-kum/animchart/internal/gioview/window"
	"github.com/san-kum/animchart/internal/playback"
	"github.com/san-kum/animchart/internal/render/gochart"
	"github.com/san-kum/animchart/internal/render/plotimg"
	"github.com/san-kum/animchart/internal/render/term"
	"github.com/san-kum/animchart/internal/tui"
)

var (
	configFile string
	demoName   string
	preset     string
	speed      float64
	startTime  float64
	frameRate  int
	theme      string
	// Still images and animations
	outFile string
	at      float64
	engine  string
	// Demo generation
	demoDuration float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "animchart",
		Short: "animated line charts for time-stamped samples",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&demoName, "demo", "", "use a built-in dataset instead of a file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "playback preset for the demo dataset")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a chart in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	addPlaybackFlags(playCmd)
	playCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")

	guiCmd := &cobra.Command{
		Use:   "gui [file]",
		Short: "play a chart in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addPlaybackFlags(guiCmd)

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "render a still image of the chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "chart.png", "output image (png, svg, pdf, eps, jpg, tif)")
	renderCmd.Flags().Float64Var(&at, "at", math.NaN(), "render the chart as drawn at this time")
	renderCmd.Flags().StringVar(&engine, "engine", "gonum", "rendering engine (gonum, gochart, term)")

	framesCmd := &cobra.Command{
		Use:   "frames [file]",
		Short: "export the animation as a GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFrames,
	}
	framesCmd.Flags().StringVar(&outFile, "out", "anim.gif", "output gif")
	framesCmd.Flags().IntVar(&frameRate, "fps", plotimg.DefaultGIFOptions().FPS, "frame rate")
	framesCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "print sample statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInfo,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "built-in datasets",
	}
	demoListCmd := &cobra.Command{
		Use:   "list",
		Short: "list built-in datasets",
		RunE:  listDemos,
	}
	demoSaveCmd := &cobra.Command{
		Use:   "save [name] [out]",
		Short: "write a built-in dataset to csv or json",
		Args:  cobra.ExactArgs(2),
		RunE:  saveDemo,
	}
	demoSaveCmd.Flags().Float64Var(&demoDuration, "duration", 0, "simulated seconds (0 uses the demo default)")
	demoCmd.AddCommand(demoListCmd, demoSaveCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "animchart.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, guiCmd, renderCmd, framesCmd, infoCmd, demoCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "playback speed")
	cmd.Flags().Float64Var(&startTime, "time", 0, "seek to this many seconds on load")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := loadDataset(args)
	if err != nil {
		return err
	}
	c, err := buildChart(ds, cfg)
	if err != nil {
		return err
	}
	autoplay(c, cfg)

	return tui.Run(c, tui.Options{
		FPS:    cfg.View.FPS,
		Width:  cfg.View.Width,
		Height: cfg.View.Height,
		Theme:  cfg.View.Theme,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := loadDataset(args)
	if err != nil {
		return err
	}
	c, err := buildChart(ds, cfg)
	if err != nil {
		return err
	}
	autoplay(c, cfg)

	opts := window.DefaultOptions()
	opts.Title = "animchart: " + c.Config().Caption
	opts.DPI = cfg.View.DPI
	opts.Autoplay = false
	return window.Run(c, opts)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := loadDataset(args)
	if err != nil {
		return err
	}
	c, err := buildChart(ds, cfg)
	if err != nil {
		return err
	}

	snap := stillFrame(c, cfg, at)

	switch engine {
	case "gonum":
		p, err := plotimg.Build(snap, plotimg.DefaultStyle())
		if err != nil {
			return err
		}
		w, h := vg.Points(float64(cfg.View.ImageWidth)), vg.Points(float64(cfg.View.ImageHeight))
		if err := plotimg.SavePlot(p, w, h, outFile); err != nil {
			return err
		}
	case "gochart":
		s := gochart.NewSurface(cfg.View.ImageWidth, cfg.View.ImageHeight)
		if err := s.Render(snap); err != nil {
			return err
		}
		if err := s.Save(outFile); err != nil {
			return err
		}
	case "term":
		if !strings.EqualFold(filepath.Ext(outFile), ".svg") {
			return fmt.Errorf("term engine writes svg only, got %s", outFile)
		}
		s := term.NewSurface(cfg.View.Width, cfg.View.Height)
		if err := s.Render(snap); err != nil {
			return err
		}
		if err := writeFile(outFile, func(w io.Writer) error { return s.WriteSVG(w, 4) }); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown engine: %s (available: gonum, gochart, term)", engine)
	}

	fmt.Printf("wrote %s (%d points, t=%.2f)\n", outFile, len(snap.Points), snap.Time)
	return nil
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := loadDataset(args)
	if err != nil {
		return err
	}

	src := playback.NewManual(time.Now())
	c, err := buildChart(ds, cfg, chart.WithTimeSource(src))
	if err != nil {
		return err
	}

	opts := plotimg.DefaultGIFOptions()
	opts.FPS = frameRate
	start := time.Now()
	frames, err := plotimg.RenderFrames(c, src, opts, plotimg.DefaultStyle())
	if err != nil {
		return err
	}

	if err := writeFile(outFile, func(w io.Writer) error { return plotimg.EncodeGIF(w, frames, opts.FPS) }); err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d frames in %v\n", outFile, len(frames), time.Since(start).Round(time.Millisecond))
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args)
	if err != nil {
		return err
	}
	c, err := chart.New(ds.Samples, ds.XUnit, ds.YUnit, ds.Caption)
	if err != nil {
		return err
	}

	full := c.Series().Full()
	sum := analysis.Summarize(c.Series())
	fmt.Printf("caption: %s\n", ds.Caption)
	fmt.Printf("samples: %d\n", sum.Samples)
	fmt.Printf("time:    %.3f .. %.3f (%.3fs)\n", c.StartTime(), c.EndTime(), sum.Duration)
	fmt.Printf("step:    %.4g min, %.4g mean, %.4g max\n", sum.MinStep, sum.MeanStep, sum.MaxStep)
	if sum.RepeatedTimes > 0 {
		fmt.Printf("repeated timestamps: %d\n", sum.RepeatedTimes)
	}
	fmt.Printf("x (%s): %.4g .. %.4g\n", ds.XUnit, full.Bounds.X.Min, full.Bounds.X.Max)
	fmt.Printf("y (%s): %.4g .. %.4g (mean %.4g, std %.4g)\n", ds.YUnit, full.Bounds.Y.Min, full.Bounds.Y.Max, sum.MeanY, sum.StdY)
	if sum.DominantPeriod > 0 {
		fmt.Printf("dominant period: %.3fs\n", sum.DominantPeriod)
	}
	fmt.Println()

	ys := make([]float64, 0, len(full.Points))
	for _, p := range full.Points {
		ys = append(ys, p.Y)
	}
	if len(ys) > 1 {
		graph := asciigraph.Plot(ys,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ds.YUnit+" by sample"),
		)
		fmt.Println(graph)
	}
	return nil
}

func listDemos(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY\tDURATION\tPRESETS\tDESCRIPTION")
	for _, name := range demo.Names() {
		d, err := demo.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%s\t%s\n",
			d.Name,
			d.XUnit,
			d.YUnit,
			d.Duration,
			strings.Join(config.ListPresets(name), ","),
			d.Description,
		)
	}
	return w.Flush()
}

func saveDemo(cmd *cobra.Command, args []string) error {
	d, err := demo.Get(args[0])
	if err != nil {
		return err
	}
	ds, err := d.Generate(context.Background(), demoDuration)
	if err != nil {
		return err
	}
	if err := dataset.Save(args[1], ds); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d samples\n", filepath.Clean(args[1]), len(ds.Samples))
	return nil
}
