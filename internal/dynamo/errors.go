package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrNumericalOverflow indicates an acceleration, velocity or angle left the
	// representable float64 range (NaN or Inf).
	ErrNumericalOverflow = errors.New("dynamo: numerical overflow")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d: %v (theta1=%g, theta2=%g, omega1=%g, omega2=%g)",
		e.Step, e.Wrapped, e.State.Theta1, e.State.Theta2, e.State.Omega1, e.State.Omega2)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
