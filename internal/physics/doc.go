// Package physics advances the double pendulum.
//
// [Accelerations] evaluates the closed-form Lagrangian equations of motion for
// two point masses on massless rigid arms. [Step] applies one semi-implicit
// update: a single acceleration evaluation feeds the velocity update, and the
// new velocity feeds the angle update. Damping multiplies the whole updated
// velocity, so a coefficient of 1 leaves the system undamped.
//
// # Overflow
//
// Chaotic or unstable trajectories can grow velocities without bound. Any
// step whose arithmetic leaves the float64 range returns the input state
// unchanged together with a [dynamo.SimulationError] wrapping
// [dynamo.ErrNumericalOverflow]:
//
//	next, err := physics.Advance(s, p)
//	if errors.Is(err, dynamo.ErrNumericalOverflow) {
//	    // stop stepping; s is the last valid state
//	}
//
// # Energy
//
// [Energy] is exact for the continuous system. The discrete step does not
// conserve it, but with no damping the error stays bounded over short
// horizons.
package physics
