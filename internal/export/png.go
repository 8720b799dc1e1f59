package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/dpsim/internal/render"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	TraceWidth float64
	ArmWidth   float64
	Caption    string
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		TraceWidth: 1,
		ArmWidth:   2,
	}
}

const circleSegments = 32

// SceneToImage rasterizes a scene with anti-aliasing.
func SceneToImage(scene *render.Scene, opts PNGOptions) *image.RGBA {
	width, height := scene.Size()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(scene.Background()), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)

	// segments sharing a color go through one rasterizer pass
	trace := scene.Trace()
	for start := 0; start < len(trace); {
		end := start
		for end < len(trace) && trace[end].Color == trace[start].Color {
			s := trace[end]
			thickLine(z, s.X0, s.Y0, s.X1, s.Y1, opts.TraceWidth)
			end++
		}
		fill(img, z, trace[start].Color)
		start = end
	}

	for _, l := range scene.Lines() {
		thickLine(z, l.X0, l.Y0, l.X1, l.Y1, opts.ArmWidth)
		fill(img, z, l.Color)
	}
	for _, c := range scene.Circles() {
		disc(z, c.CX, c.CY, c.R)
		fill(img, z, c.Color)
	}

	if opts.Caption != "" {
		caption(img, opts.Caption)
	}
	return img
}

// EncodePNG writes the rasterized scene to w.
func EncodePNG(w io.Writer, scene *render.Scene, opts PNGOptions) error {
	if err := png.Encode(w, SceneToImage(scene, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG renders the scene to a file at path.
func WritePNG(path string, scene *render.Scene, opts PNGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, scene, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fill(img *image.RGBA, z *vector.Rasterizer, c color.RGBA) {
	z.DrawOp = draw.Over
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	b := img.Bounds()
	z.Reset(b.Dx(), b.Dy())
}

// thickLine adds a quad of width w around the segment. Every quad winds the
// same way so overlapping quads saturate instead of cancelling.
func thickLine(z *vector.Rasterizer, x0, y0, x1, y1, w float64) {
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return
	}
	nx, ny := -dy/n*w/2, dx/n*w/2

	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
}

func disc(z *vector.Rasterizer, cx, cy, r float64) {
	if r <= 0 {
		return
	}
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}

func caption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{200, 200, 200, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(8), Y: fixed.I(8 + face.Ascent)},
	}
	d.DrawString(text)
}
