package physics

import (
	"errors"
	"fmt"

	"github.com/san-kum/dpsim/internal/dynamo"
)

// Simulation owns the mutable state of one pendulum. It is not safe for
// concurrent use; hosts drive it from a single loop.
type Simulation struct {
	state  dynamo.State
	params dynamo.Params
	dt     float64
	steps  int
	err    error
}

func NewSimulation(initial dynamo.State, params dynamo.Params, dt float64) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, dt)
	}
	if !initial.IsValid() {
		return nil, fmt.Errorf("%w: initial state is not finite", dynamo.ErrParameterBounds)
	}
	return &Simulation{state: initial, params: params, dt: dt}, nil
}

func (s *Simulation) State() dynamo.State   { return s.state }
func (s *Simulation) Params() dynamo.Params { return s.params }
func (s *Simulation) Steps() int            { return s.steps }
func (s *Simulation) Err() error            { return s.err }
func (s *Simulation) Energy() float64       { return Energy(s.state, s.params) }

// Advance steps the state in place. Once a step has overflowed the simulation
// is halted and every later call returns the same error.
func (s *Simulation) Advance() error {
	if s.err != nil {
		return s.err
	}
	next, err := Step(s.state, s.params, s.dt)
	if err != nil {
		var simErr *dynamo.SimulationError
		if errors.As(err, &simErr) {
			simErr.Step = s.steps
		}
		s.err = err
		return err
	}
	s.state = next
	s.steps++
	return nil
}
