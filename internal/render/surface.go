package render

import "image/color"

// Surface is a retained-mode drawing target. Shapes are addressed by id;
// trace segments are anonymous and never removed.
type Surface interface {
	DrawLine(id string, x0, y0, x1, y1 float64, c color.RGBA)
	MoveLine(id string, x0, y0, x1, y1 float64)
	DrawCircle(id string, cx, cy, r float64, c color.RGBA)
	MoveCircle(id string, dx, dy float64)
	DrawTraceSegment(x0, y0, x1, y1 float64, c color.RGBA)
}

// Shape ids used by the bridge.
const (
	Arm1 = "arm1"
	Arm2 = "arm2"
	Orb1 = "orb1"
	Orb2 = "orb2"
)

// Style holds presentation choices. None of them affect the physics.
type Style struct {
	ArmColor   color.RGBA
	Orb1Color  color.RGBA
	Orb2Color  color.RGBA
	TraceColor color.RGBA
	Orb1Radius float64
	Orb2Radius float64
}

func DefaultStyle() Style {
	return Style{
		ArmColor:   color.RGBA{255, 255, 255, 255},
		Orb1Color:  color.RGBA{0, 0, 255, 255},
		Orb2Color:  color.RGBA{255, 0, 0, 255},
		TraceColor: color.RGBA{255, 165, 0, 255},
		Orb1Radius: 11,
		Orb2Radius: 11,
	}
}
