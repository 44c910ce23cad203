package demo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/animchart/internal/dataset"
	"github.com/san-kum/animchart/internal/series"
	"github.com/san-kum/animchart/internal/sim"
)

var ErrUnknownDemo = errors.New("demo: unknown dataset")

// Demo describes a built-in dataset.
type Demo struct {
	Name        string
	Description string
	XUnit       string
	YUnit       string
	Duration    float64

	generate func(ctx context.Context, duration float64) ([]series.Sample, error)
}

// Generate produces the demo's samples. A non-positive duration uses the
// demo's default.
func (d Demo) Generate(ctx context.Context, duration float64) (*dataset.Dataset, error) {
	if duration <= 0 {
		duration = d.Duration
	}
	samples, err := d.generate(ctx, duration)
	if err != nil {
		return nil, fmt.Errorf("demo %s: %w", d.Name, err)
	}
	return &dataset.Dataset{
		XUnit:   d.XUnit,
		YUnit:   d.YUnit,
		Caption: d.Name,
		Samples: samples,
	}, nil
}

var catalog = map[string]Demo{
	"vanderpol": {
		Name: "vanderpol", Description: "limit cycle oscillator (phase portrait)",
		XUnit: "x", YUnit: "dx/dt", Duration: 20,
		generate: integrate(VanDerPol{Mu: 1.0}, sim.State{2.0, 0.0}, 0.02, 0, 1),
	},
	"pendulum": {
		Name: "pendulum", Description: "damped pendulum (phase portrait)",
		XUnit: "theta", YUnit: "omega", Duration: 20,
		generate: integrate(Pendulum{G: 9.81, L: 1.0, Damping: 0.3}, sim.State{2.5, 0.0}, 0.01, 0, 1),
	},
	"lorenz": {
		Name: "lorenz", Description: "butterfly attractor (x-z projection)",
		XUnit: "x", YUnit: "z", Duration: 30,
		generate: integrate(Lorenz{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0}, sim.State{1, 1, 1}, 0.01, 0, 2),
	},
	"duffing": {
		Name: "duffing", Description: "forced chaotic oscillator",
		XUnit: "x", YUnit: "v", Duration: 40,
		generate: integrate(Duffing{Delta: 0.3, Alpha: -1, Beta: 1, Gamma: 0.5, Omega: 1.2}, sim.State{1, 0}, 0.01, 0, 1),
	},
	"spring": {
		Name: "spring", Description: "damped spring position over time",
		XUnit: "t (s)", YUnit: "pos", Duration: 15,
		generate: overTime(SpringMass{K: 4, M: 1, C: 0.3}, sim.State{1, 0}, 0.02, 0),
	},
	"lissajous": {
		Name: "lissajous", Description: "3:2 lissajous figure",
		XUnit: "x", YUnit: "y", Duration: 2 * math.Pi,
		generate: lissajous(3, 2, math.Pi/2, 0.01),
	},
}

// Get returns the named demo.
func Get(name string) (Demo, error) {
	d, ok := catalog[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownDemo, name, Names())
	}
	return d, nil
}

// Names lists the built-in demos in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// integrate runs sys and plots state[xi] against state[yi].
func integrate(sys sim.System, x0 sim.State, dt float64, xi, yi int) func(context.Context, float64) ([]series.Sample, error) {
	return func(ctx context.Context, duration float64) ([]series.Sample, error) {
		res, err := sim.Run(ctx, sys, sim.NewRK4(), x0, sim.Config{Dt: dt, Duration: duration})
		if err != nil {
			return nil, err
		}
		samples := make([]series.Sample, len(res.States))
		for i, s := range res.States {
			samples[i] = series.Sample{X: s[xi], Y: s[yi], T: res.Times[i]}
		}
		return samples, nil
	}
}

// overTime runs sys and plots state[yi] against time.
func overTime(sys sim.System, x0 sim.State, dt float64, yi int) func(context.Context, float64) ([]series.Sample, error) {
	return func(ctx context.Context, duration float64) ([]series.Sample, error) {
		res, err := sim.Run(ctx, sys, sim.NewRK4(), x0, sim.Config{Dt: dt, Duration: duration})
		if err != nil {
			return nil, err
		}
		samples := make([]series.Sample, len(res.States))
		for i, s := range res.States {
			samples[i] = series.Sample{X: res.Times[i], Y: s[yi], T: res.Times[i]}
		}
		return samples, nil
	}
}

func lissajous(a, b, delta, dt float64) func(context.Context, float64) ([]series.Sample, error) {
	return func(_ context.Context, duration float64) ([]series.Sample, error) {
		n := int(duration/dt) + 1
		samples := make([]series.Sample, n)
		for i := range samples {
			t := float64(i) * dt
			samples[i] = series.Sample{X: math.Sin(a*t + delta), Y: math.Sin(b * t), T: t}
		}
		return samples, nil
	}
}
