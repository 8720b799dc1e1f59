package viz

import "math"

// Viewport scales a scene of sceneW x sceneH pixels uniformly onto a canvas
// of dotsW x dotsH dots, centered.
type Viewport struct {
	Scale      float64
	OffX, OffY float64
}

func NewViewport(sceneW, sceneH, dotsW, dotsH int) Viewport {
	if sceneW <= 0 || sceneH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(float64(dotsW)/float64(sceneW), float64(dotsH)/float64(sceneH))
	return Viewport{
		Scale: scale,
		OffX:  (float64(dotsW) - float64(sceneW)*scale) / 2,
		OffY:  (float64(dotsH) - float64(sceneH)*scale) / 2,
	}
}

// Map converts a scene point to canvas dots. Points far off screen are
// clamped so the line rasterizer never walks an unbounded distance.
func (v Viewport) Map(x, y float64) (int, int) {
	const limit = 1 << 16
	px := clamp(math.Round(x*v.Scale+v.OffX), -limit, limit)
	py := clamp(math.Round(y*v.Scale+v.OffY), -limit, limit)
	return int(px), int(py)
}

func (v Viewport) Radius(r float64) int {
	return int(math.Round(r * v.Scale))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
