package analysis

import (
	"math"

	"github.com/san-kum/animchart/internal/series"
)

const (
	minSpectrum = 8
	maxSpectrum = 4096
)

// Summary describes the sampling and spread of a series.
type Summary struct {
	Samples  int
	Duration float64

	MinStep, MaxStep, MeanStep float64
	// RepeatedTimes counts samples that share their timestamp with the
	// previous sample.
	RepeatedTimes int

	MeanY, StdY float64
	// DominantPeriod is the period of the strongest oscillation in y(t), or 0
	// when there is none.
	DominantPeriod float64
}

func Summarize(s *series.Series) Summary {
	times, pts := s.Times(), s.Points()
	sum := Summary{
		Samples:  s.Len(),
		Duration: s.End() - s.Start(),
		MinStep:  math.Inf(1),
	}

	for i := 1; i < len(times); i++ {
		step := times[i] - times[i-1]
		if step == 0 {
			sum.RepeatedTimes++
		}
		sum.MinStep = math.Min(sum.MinStep, step)
		sum.MaxStep = math.Max(sum.MaxStep, step)
	}
	if len(times) > 1 {
		sum.MeanStep = sum.Duration / float64(len(times)-1)
	} else {
		sum.MinStep = 0
	}

	n := 0
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		n++
		sum.MeanY += p.Y
	}
	if n > 0 {
		sum.MeanY /= float64(n)
		for _, p := range pts {
			if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				continue
			}
			d := p.Y - sum.MeanY
			sum.StdY += d * d
		}
		sum.StdY = math.Sqrt(sum.StdY / float64(n))
	}

	sum.DominantPeriod = dominantPeriod(times, pts, sum.MeanY)
	return sum
}

// dominantPeriod resamples y(t) onto an even grid spanning the series and
// returns the period of the strongest non-zero frequency bin.
func dominantPeriod(times []float64, pts []series.Point, mean float64) float64 {
	span := times[len(times)-1] - times[0]
	if len(times) < minSpectrum || span <= 0 {
		return 0
	}

	n := min(max(nextPow2(len(times)), minSpectrum), maxSpectrum)
	grid := make([]float64, n)
	j := 0
	for i := range grid {
		t := times[0] + span*float64(i)/float64(n)
		for j < len(times)-2 && times[j+1] <= t {
			j++
		}
		grid[i] = interpolate(times[j], times[j+1], pts[j].Y, pts[j+1].Y, t) - mean
		if math.IsNaN(grid[i]) || math.IsInf(grid[i], 0) {
			grid[i] = 0
		}
	}

	ps := PowerSpectrum(grid)
	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	if best == 0 || bestPower < 1e-9*float64(n) {
		return 0
	}
	return span / float64(best)
}

func interpolate(t0, t1, y0, y1, t float64) float64 {
	if t1 == t0 {
		return y1
	}
	return y0 + (y1-y0)*(t-t0)/(t1-t0)
}
