package series

import "errors"

var (
	// ErrNoSamples indicates an attempt to build a series from zero samples.
	ErrNoSamples = errors.New("series: at least one sample is required")
)
