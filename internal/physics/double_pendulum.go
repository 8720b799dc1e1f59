package physics

import (
	"math"

	"github.com/san-kum/dpsim/internal/dynamo"
)

// Accelerations returns the angular accelerations of both arms. The
// denominator only vanishes for degenerate arm configurations; near them the
// result grows large instead of failing.
func Accelerations(s dynamo.State, p dynamo.Params) (alpha1, alpha2 float64) {
	t1, t2, w1, w2 := s.Theta1, s.Theta2, s.Omega1, s.Omega2
	m1, m2, l1, l2, g := p.M1, p.M2, p.L1, p.L2, p.G

	delta := t1 - t2
	sinD, cosD := math.Sin(delta), math.Cos(delta)
	den := 2*m1 + m2 - m2*math.Cos(2*t1-2*t2)

	num1 := -g * (2*m1 + m2) * math.Sin(t1)
	num2 := -m2 * g * math.Sin(t1-2*t2)
	num3 := -2 * sinD * m2
	num4 := w2*w2*l2 + w1*w1*l1*cosD
	alpha1 = (num1 + num2 + num3*num4) / (l1 * den)

	num1 = 2 * sinD
	num2 = w1 * w1 * l1 * (m1 + m2)
	num3 = g * (m1 + m2) * math.Cos(t1)
	num4 = w2 * w2 * l2 * m2 * cosD
	alpha2 = num1 * (num2 + num3 + num4) / (l2 * den)

	return alpha1, alpha2
}

// Step advances s by one semi-implicit step of size dt. On overflow s is
// returned unchanged with an error wrapping dynamo.ErrNumericalOverflow.
func Step(s dynamo.State, p dynamo.Params, dt float64) (dynamo.State, error) {
	alpha1, alpha2 := Accelerations(s, p)
	if !finite(alpha1, alpha2) {
		return s, overflow(s)
	}

	next := s
	next.Omega1 = (s.Omega1 + alpha1*dt) * p.Mu1
	next.Omega2 = (s.Omega2 + alpha2*dt) * p.Mu2
	next.Theta1 = s.Theta1 + next.Omega1*dt
	next.Theta2 = s.Theta2 + next.Omega2*dt

	if !next.IsValid() {
		return s, overflow(s)
	}
	return next, nil
}

// Advance is Step with the frame-coupled step size of 1.
func Advance(s dynamo.State, p dynamo.Params) (dynamo.State, error) {
	return Step(s, p, 1)
}

// Energy returns the total mechanical energy with y measured downward from
// the pivot.
func Energy(s dynamo.State, p dynamo.Params) float64 {
	t1, t2, w1, w2 := s.Theta1, s.Theta2, s.Omega1, s.Omega2
	m1, m2, l1, l2, g := p.M1, p.M2, p.L1, p.L2, p.G

	v1sq := l1 * l1 * w1 * w1
	v2sq := l1*l1*w1*w1 + l2*l2*w2*w2 + 2*l1*l2*w1*w2*math.Cos(t1-t2)
	ke := 0.5*m1*v1sq + 0.5*m2*v2sq

	pe := -(m1+m2)*g*l1*math.Cos(t1) - m2*g*l2*math.Cos(t2)
	return ke + pe
}

// RestEnergy is the energy of the hanging equilibrium, the minimum of Energy.
func RestEnergy(p dynamo.Params) float64 {
	return Energy(dynamo.State{}, p)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func overflow(s dynamo.State) error {
	return &dynamo.SimulationError{State: s, Wrapped: dynamo.ErrNumericalOverflow}
}
