package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates the integration produced NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates an initial state of the wrong size.
	ErrDimensionMismatch = errors.New("sim: dimension mismatch between state and system")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
