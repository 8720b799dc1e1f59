package render

import (
	"math"

	"github.com/san-kum/dpsim/internal/dynamo"
)

type Point struct {
	X, Y float64
}

// Positions are the screen coordinates of both masses. Screen y grows downward,
// so an arm at angle zero hangs below the origin.
type Positions struct {
	X1, Y1 float64
	X2, Y2 float64
}

func (p Positions) Mass1() Point { return Point{p.X1, p.Y1} }
func (p Positions) Mass2() Point { return Point{p.X2, p.Y2} }

// Project maps the arm angles to screen space around origin.
func Project(theta1, theta2 float64, p dynamo.Params, origin Point) Positions {
	x1 := p.L1 * math.Sin(theta1)
	y1 := p.L1 * math.Cos(theta1)
	x2 := x1 + p.L2*math.Sin(theta2)
	y2 := y1 + p.L2*math.Cos(theta2)
	return Positions{
		X1: origin.X + x1, Y1: origin.Y + y1,
		X2: origin.X + x2, Y2: origin.Y + y2,
	}
}

func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
