package metrics

import (
	"math"

	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/physics"
)

const DefaultHistory = 600

// EnergyDrift tracks the total energy of the pendulum relative to the first
// observation. Drift is normalized by the depth of the potential well, so a
// start with zero energy still reports a meaningful fraction.
type EnergyDrift struct {
	params   dynamo.Params
	initial  float64
	current  float64
	maxDrift float64
	samples  int
	history  []float64
	capacity int
}

func NewEnergyDrift(params dynamo.Params, capacity int) *EnergyDrift {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	return &EnergyDrift{
		params:   params,
		history:  make([]float64, 0, capacity),
		capacity: capacity,
	}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s dynamo.State) {
	energy := physics.Energy(s, e.params)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if scale := e.scale(); scale > 0 {
		e.maxDrift = math.Max(e.maxDrift, math.Abs(energy-e.initial)/scale)
	}

	e.history = append(e.history, energy)
	if len(e.history) > e.capacity {
		e.history = e.history[1:]
	}
}

// Value is the largest drift seen so far.
func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Initial() float64 { return e.initial }
func (e *EnergyDrift) Current() float64 { return e.current }
func (e *EnergyDrift) Samples() int     { return e.samples }

// History returns the most recent energies, oldest first.
func (e *EnergyDrift) History() []float64 { return e.history }

func (e *EnergyDrift) scale() float64 {
	return math.Abs(physics.RestEnergy(e.params))
}
