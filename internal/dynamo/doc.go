// Package dynamo provides the core value types of the double pendulum.
//
//   - [State]: the two arm angles and their angular velocities
//   - [Params]: gravity, masses, arm lengths and per-arm damping
//   - [SimulationError]: a failed step together with the last valid state
//
// # Example
//
//	p := dynamo.DefaultParams()
//	s := dynamo.State{Theta1: math.Pi / 2, Theta2: math.Pi / 2}
//	next, err := physics.Advance(s, p)
//
// # Units
//
// Angles are radians measured from the downward vertical. Velocities are
// radians per step: the integrator has no notion of wall-clock time, one step
// is one rendered frame unless a different step size is configured.
package dynamo
