package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Playback.Speed != DefaultSpeed {
		t.Errorf("expected speed %f, got %f", DefaultSpeed, cfg.Playback.Speed)
	}
	if cfg.Playback.StartTime != nil {
		t.Error("start time should be unset")
	}
	if cfg.View.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animchart.yaml")

	cfg := DefaultConfig()
	cfg.Chart.Caption = "orbit"
	cfg.Playback.Speed = 2.5
	cfg.Playback.StartTime = startAt(3)
	cfg.View.Theme = "matrix"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Chart.Caption != "orbit" || got.Playback.Speed != 2.5 || got.View.Theme != "matrix" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Playback.StartTime == nil || *got.Playback.StartTime != 3 {
		t.Errorf("expected start time 3, got %v", got.Playback.StartTime)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("playback:\n  speed: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Playback.Speed != 0.5 {
		t.Errorf("expected speed 0.5, got %f", cfg.Playback.Speed)
	}
	if cfg.View.FPS != DefaultFPS || cfg.View.Theme != DefaultTheme {
		t.Errorf("expected view defaults, got %+v", cfg.View)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative speed", "playback:\n  speed: -1\n"},
		{"zero fps", "view:\n  fps: 0\n"},
		{"tiny view", "view:\n  width: 2\n"},
		{"zero dpi", "view:\n  dpi: 0\n"},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chart = ChartConfig{XUnit: "theta"}

	x, y, caption := cfg.Labels("x", "omega", "pendulum")
	if x != "theta" || y != "omega" || caption != "pendulum" {
		t.Errorf("unexpected labels %q %q %q", x, y, caption)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "late")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Playback.StartTime == nil || *cfg.Playback.StartTime != 15 {
		t.Errorf("expected start time 15, got %v", cfg.Playback.StartTime)
	}
	if cfg.Playback.Autoplay {
		t.Error("expected autoplay off")
	}

	*cfg.Playback.StartTime = 99
	if *Presets["lorenz"]["late"].StartTime != 15 {
		t.Error("preset mutated through returned config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lorenz", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "slow"); cfg != nil {
		t.Error("expected nil for nonexistent demo")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("lorenz")
	if len(presets) != 3 || presets[0] != "late" {
		t.Errorf("expected sorted lorenz presets, got %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent demo")
	}
}
