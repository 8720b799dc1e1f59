package dynamo

import (
	"fmt"
	"math"
)

const (
	DefaultGravity = 1.0
	DefaultMass    = 40.0
	DefaultLength  = 100.0
	DefaultDamping = 1.0
)

// State is the angular state of both arms.
type State struct {
	Theta1, Theta2 float64
	Omega1, Omega2 float64
}

// Rest returns a state with both arms at angle theta and no motion.
func Rest(theta float64) State {
	return State{Theta1: theta, Theta2: theta}
}

func (s State) IsValid() bool {
	for _, v := range [...]float64{s.Theta1, s.Theta2, s.Omega1, s.Omega2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Params holds the physical constants. They never change while a simulation runs.
type Params struct {
	G        float64
	M1, M2   float64
	L1, L2   float64
	Mu1, Mu2 float64
}

func DefaultParams() Params {
	return Params{
		G:  DefaultGravity,
		M1: DefaultMass, M2: DefaultMass,
		L1: DefaultLength, L2: DefaultLength,
		Mu1: DefaultDamping, Mu2: DefaultDamping,
	}
}

func (p Params) Validate() error {
	checks := []struct {
		name string
		ok   bool
		val  float64
	}{
		{"g", p.G > 0, p.G},
		{"m1", p.M1 > 0, p.M1},
		{"m2", p.M2 > 0, p.M2},
		{"l1", p.L1 > 0, p.L1},
		{"l2", p.L2 > 0, p.L2},
		{"mu1", p.Mu1 > 0 && p.Mu1 <= 1, p.Mu1},
		{"mu2", p.Mu2 > 0 && p.Mu2 <= 1, p.Mu2},
	}
	for _, c := range checks {
		if !c.ok || math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return fmt.Errorf("%w: %s=%g", ErrParameterBounds, c.name, c.val)
		}
	}
	return nil
}
