package sim

import (
	"context"
	"fmt"
)

// Run integrates sys from x0 over cfg.Duration with a fixed step. It stops
// early, returning the partial result, if the state becomes invalid or ctx is
// cancelled.
func Run(ctx context.Context, sys System, integ Integrator, x0 State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != sys.StateDim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), sys.StateDim())
	}

	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		States: make([]State, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, 0)

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i-1) * cfg.Dt
		x = integ.Step(sys, x, t, cfg.Dt)
		if !x.IsValid() {
			return result, &StepError{Step: i, Time: t, Wrapped: ErrInvalidState}
		}

		result.States = append(result.States, x)
		result.Times = append(result.Times, float64(i)*cfg.Dt)
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
