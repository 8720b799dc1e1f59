package render

import (
	"math"
	"testing"

	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/physics"
)

func TestProject(t *testing.T) {
	p := dynamo.DefaultParams()
	origin := Point{350, 250}

	tests := []struct {
		name           string
		theta1, theta2 float64
		want           Positions
	}{
		{"hanging", 0, 0, Positions{350, 350, 350, 450}},
		{"horizontal right", math.Pi / 2, math.Pi / 2, Positions{450, 250, 550, 250}},
		{"folded up", math.Pi, math.Pi, Positions{350, 150, 350, 50}},
		{"second arm left", 0, -math.Pi / 2, Positions{350, 350, 250, 350}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.theta1, tt.theta2, p, origin)
			vals := [][2]float64{
				{got.X1, tt.want.X1}, {got.Y1, tt.want.Y1},
				{got.X2, tt.want.X2}, {got.Y2, tt.want.Y2},
			}
			for i, v := range vals {
				if math.Abs(v[0]-v[1]) > 1e-9 {
					t.Errorf("component %d: got %g, want %g", i, v[0], v[1])
				}
			}
		})
	}
}

func TestKinematicChainAfterEveryStep(t *testing.T) {
	p := dynamo.DefaultParams()
	origin := Point{350, 250}
	s := dynamo.State{Theta1: math.Pi / 2, Theta2: math.Pi / 2}

	for i := 0; i < 1000; i++ {
		next, err := physics.Advance(s, p)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		s = next

		pos := Project(s.Theta1, s.Theta2, p, origin)
		if d := Distance(origin, pos.Mass1()); math.Abs(d-p.L1) > 1e-9 {
			t.Fatalf("step %d: |origin-mass1| = %.12f, want %g", i, d, p.L1)
		}
		if d := Distance(pos.Mass1(), pos.Mass2()); math.Abs(d-p.L2) > 1e-9 {
			t.Fatalf("step %d: |mass1-mass2| = %.12f, want %g", i, d, p.L2)
		}
	}
}
