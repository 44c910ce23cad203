package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeed       = 1.0
	DefaultFPS         = 30
	DefaultWidth       = 72
	DefaultHeight      = 20
	DefaultTheme       = "cyberpunk"
	DefaultDPI         = 128
	DefaultImageWidth  = 800
	DefaultImageHeight = 500
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Chart    ChartConfig    `yaml:"chart"`
	Playback PlaybackConfig `yaml:"playback"`
	View     ViewConfig     `yaml:"view"`
}

// ChartConfig overrides the labels a dataset carries. Empty fields keep the
// dataset's own.
type ChartConfig struct {
	XUnit   string `yaml:"x_unit"`
	YUnit   string `yaml:"y_unit"`
	Caption string `yaml:"caption"`
}

type PlaybackConfig struct {
	Speed float64 `yaml:"speed"`
	// StartTime seeks the chart on load when set.
	StartTime *float64 `yaml:"start_time"`
	Autoplay  bool     `yaml:"autoplay"`
}

type ViewConfig struct {
	FPS         int    `yaml:"fps"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Theme       string `yaml:"theme"`
	DPI         int    `yaml:"dpi"`
	ImageWidth  int    `yaml:"image_width"`
	ImageHeight int    `yaml:"image_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Speed:    DefaultSpeed,
			Autoplay: true,
		},
		View: ViewConfig{
			FPS:         DefaultFPS,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			Theme:       DefaultTheme,
			DPI:         DefaultDPI,
			ImageWidth:  DefaultImageWidth,
			ImageHeight: DefaultImageHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the players cannot run with. A zero speed is
// allowed and freezes playback.
func (c *Config) Validate() error {
	switch {
	case c.Playback.Speed < 0:
		return fmt.Errorf("%w: playback.speed %g", ErrInvalid, c.Playback.Speed)
	case c.View.FPS <= 0:
		return fmt.Errorf("%w: view.fps %d", ErrInvalid, c.View.FPS)
	case c.View.Width < 8 || c.View.Height < 4:
		return fmt.Errorf("%w: view size %dx%d", ErrInvalid, c.View.Width, c.View.Height)
	case c.View.DPI <= 0:
		return fmt.Errorf("%w: view.dpi %d", ErrInvalid, c.View.DPI)
	case c.View.ImageWidth <= 0 || c.View.ImageHeight <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalid, c.View.ImageWidth, c.View.ImageHeight)
	}
	return nil
}

// Labels fills empty chart labels from the given fallbacks.
func (c *Config) Labels(xUnit, yUnit, caption string) (string, string, string) {
	pick := func(set, fallback string) string {
		if set != "" {
			return set
		}
		return fallback
	}
	return pick(c.Chart.XUnit, xUnit), pick(c.Chart.YUnit, yUnit), pick(c.Chart.Caption, caption)
}
