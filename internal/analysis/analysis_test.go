package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/animchart/internal/series"
)

func TestFFTPadsToPowerOfTwo(t *testing.T) {
	out := FFT([]float64{1, 1, 1})
	if len(out) != 4 {
		t.Fatalf("expected padded length 4, got %d", len(out))
	}
	if real(out[0]) != 3 {
		t.Errorf("expected dc component 3, got %v", out[0])
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}
	ps := PowerSpectrum(data)
	peak := 0
	for k := range ps {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak != 4 {
		t.Errorf("expected peak at bin 4, got %d", peak)
	}
}

func TestSummarizeSine(t *testing.T) {
	var samples []series.Sample
	for i := 0; i <= 1600; i++ {
		tm := float64(i) * 0.01
		samples = append(samples, series.Sample{X: tm, Y: math.Sin(math.Pi * tm), T: tm})
	}
	sum := Summarize(series.MustNew(samples))

	if sum.Samples != 1601 {
		t.Errorf("expected 1601 samples, got %d", sum.Samples)
	}
	if math.Abs(sum.Duration-16) > 1e-9 {
		t.Errorf("expected duration 16, got %f", sum.Duration)
	}
	if math.Abs(sum.MeanStep-0.01) > 1e-9 {
		t.Errorf("expected mean step 0.01, got %f", sum.MeanStep)
	}
	if math.Abs(sum.DominantPeriod-2) > 0.05 {
		t.Errorf("expected period ≈2, got %f", sum.DominantPeriod)
	}
	if math.Abs(sum.StdY-math.Sqrt2/2) > 0.01 {
		t.Errorf("expected std ≈0.707, got %f", sum.StdY)
	}
}

func TestSummarizeRepeatedAndConstant(t *testing.T) {
	samples := []series.Sample{
		{X: 0, Y: 5, T: 0},
		{X: 1, Y: 5, T: 1},
		{X: 2, Y: 5, T: 1},
		{X: 3, Y: 5, T: 3},
	}
	sum := Summarize(series.MustNew(samples))
	if sum.RepeatedTimes != 1 {
		t.Errorf("expected 1 repeated time, got %d", sum.RepeatedTimes)
	}
	if sum.MinStep != 0 || sum.MaxStep != 2 {
		t.Errorf("unexpected steps %f..%f", sum.MinStep, sum.MaxStep)
	}
	if sum.StdY != 0 || sum.DominantPeriod != 0 {
		t.Errorf("constant series should have no spread or period: %+v", sum)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	sum := Summarize(series.MustNew([]series.Sample{{X: 1, Y: 2, T: 3}}))
	if sum.Samples != 1 || sum.Duration != 0 || sum.MinStep != 0 || sum.DominantPeriod != 0 {
		t.Errorf("unexpected summary %+v", sum)
	}
}
