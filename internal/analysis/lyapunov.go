package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/physics"
)

// LyapunovExponent estimates the largest Lyapunov exponent by trajectory
// separation. A shadow trajectory starts perturbation away in theta1; after
// every step the separation is logged and the shadow is pulled back to the
// initial distance along the same direction.
//
// If either trajectory overflows, the exponent accumulated over the completed
// steps is returned together with a *dynamo.SimulationError whose Step is the
// index of the failing step.
func LyapunovExponent(x0 dynamo.State, p dynamo.Params, dt float64, steps int, perturbation float64) (float64, error) {
	shadow := x0
	shadow.Theta1 += perturbation
	return lyapunovForPerturbation(x0, shadow, p, dt, steps, perturbation)
}

// LyapunovSpectrum perturbs each state component independently, in the order
// theta1, theta2, omega1, omega2. On overflow the exponents computed so far
// are returned with the error, the failing component's partial value last.
func LyapunovSpectrum(x0 dynamo.State, p dynamo.Params, dt float64, steps int, perturbation float64) ([]float64, error) {
	spectrum := make([]float64, 4)
	for i := range spectrum {
		v := toVec(x0)
		v[i] += perturbation
		l, err := lyapunovForPerturbation(x0, fromVec(v), p, dt, steps, perturbation)
		spectrum[i] = l
		if err != nil {
			return spectrum[:i+1], fmt.Errorf("component %d: %w", i, err)
		}
	}
	return spectrum, nil
}

func lyapunovForPerturbation(x, xp dynamo.State, p dynamo.Params, dt float64, steps int, d0 float64) (float64, error) {
	if steps <= 0 || dt <= 0 || !(d0 > 0) {
		return 0, fmt.Errorf("%w: steps=%d dt=%g perturbation=%g", dynamo.ErrParameterBounds, steps, dt, d0)
	}

	sumLog := 0.0
	count := 0
	var err error
	for i := 0; i < steps; i++ {
		if x, err = physics.Step(x, p, dt); err == nil {
			xp, err = physics.Step(xp, p, dt)
		}
		if err != nil {
			var simErr *dynamo.SimulationError
			if errors.As(err, &simErr) {
				simErr.Step = i
			}
			return exponent(sumLog, count, dt), err
		}

		a, b := toVec(x), toVec(xp)
		sep := 0.0
		for j := range a {
			diff := b[j] - a[j]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)
		if sep == 0 {
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for j := range b {
			b[j] = a[j] + (b[j]-a[j])*scale
		}
		xp = fromVec(b)
	}

	return exponent(sumLog, count, dt), nil
}

func exponent(sumLog float64, count int, dt float64) float64 {
	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}

func toVec(s dynamo.State) [4]float64 {
	return [4]float64{s.Theta1, s.Theta2, s.Omega1, s.Omega2}
}

func fromVec(v [4]float64) dynamo.State {
	return dynamo.State{Theta1: v[0], Theta2: v[1], Omega1: v[2], Omega2: v[3]}
}
