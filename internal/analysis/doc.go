// Package analysis summarizes a sample series for reporting.
//
//   - [Summarize]: sample spacing, value spread and dominant period
//   - [PowerSpectrum]: magnitude spectrum of evenly spaced values
//
// The dominant period is found by resampling y(t) onto an even grid and
// picking the strongest non-zero FFT bin:
//
//	sum := analysis.Summarize(s)
//	if sum.DominantPeriod > 0 {
//	    fmt.Printf("period ≈ %.2fs\n", sum.DominantPeriod)
//	}
package analysis
