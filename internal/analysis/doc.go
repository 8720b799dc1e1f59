// Package analysis characterizes the pendulum's sensitivity to initial
// conditions.
//
// A positive largest Lyapunov exponent indicates chaotic motion:
//
//	lambda, err := analysis.LyapunovExponent(s, p, 1, 5000, 1e-8)
//	if err == nil && lambda > 0 {
//	    // trajectories from nearby starts diverge exponentially
//	}
//
// Exponents are per unit of simulated time, so with the default dt of one
// they are per frame.
package analysis
