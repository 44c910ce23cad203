package config

import "sort"

func startAt(t float64) *float64 { return &t }

// Presets holds playback overrides per demo dataset.
var Presets = map[string]map[string]PlaybackConfig{
	"lorenz": {
		"slow":   {Speed: 0.5, Autoplay: true},
		"replay": {Speed: 4, Autoplay: true},
		"late":   {Speed: 1, StartTime: startAt(15), Autoplay: false},
	},
	"vanderpol": {
		"slow": {Speed: 0.5, Autoplay: true},
		"fast": {Speed: 3, Autoplay: true},
	},
	"pendulum": {
		"slow":   {Speed: 0.25, Autoplay: true},
		"settle": {Speed: 1, StartTime: startAt(10), Autoplay: true},
	},
	"duffing": {
		"fast": {Speed: 4, Autoplay: true},
	},
	"spring": {
		"slow": {Speed: 0.5, Autoplay: true},
	},
	"lissajous": {
		"trace": {Speed: 0.25, Autoplay: true},
	},
}

// GetPreset returns the default config with the named preset applied, or nil.
func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	pb, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Playback = pb
	if pb.StartTime != nil {
		cfg.Playback.StartTime = startAt(*pb.StartTime)
	}
	return cfg
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
