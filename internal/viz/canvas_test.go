package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndIsSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("dot (3,5) should be set")
	}
	if c.IsSet(2, 5) {
		t.Error("dot (2,5) should not be set")
	}
	// out of range is ignored
	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)
	if c.IsSet(-1, 0) || c.IsSet(8, 0) {
		t.Error("out of range dots must never report set")
	}
}

func TestCanvasBrailleEncoding(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	if got, want := c.Grid[0][0], rune(0x2800|0x1|0x80); got != want {
		t.Errorf("got %U, want %U", got, want)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 0, 0, 9, 0},
		{"vertical", 2, 0, 2, 7},
		{"diagonal", 0, 0, 7, 7},
		{"reversed", 9, 7, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(5, 2)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if !c.IsSet(tt.x0, tt.y0) || !c.IsSet(tt.x1, tt.y1) {
				t.Error("line endpoints should be set")
			}
		})
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3)
	for _, p := range [][2]int{{10, 10}, {13, 10}, {10, 7}, {8, 8}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("dot %v should be inside the circle", p)
		}
	}
	if c.IsSet(13, 13) {
		t.Error("corner (13,13) lies outside radius 3")
	}

	small := NewCanvas(2, 2)
	small.FillCircle(1, 1, 0)
	if !small.IsSet(1, 1) {
		t.Error("zero radius should still mark the center")
	}
}

func TestCanvasCopyFrom(t *testing.T) {
	src := NewCanvas(3, 3)
	src.DrawLine(0, 0, 5, 11)

	dst := NewCanvas(3, 3)
	dst.Set(5, 0)
	dst.CopyFrom(src)
	if dst.String() != src.String() {
		t.Error("copy should reproduce the source")
	}
	if dst.IsSet(5, 0) {
		t.Error("copy should overwrite existing dots")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if n := len([]rune(l)); n != 3 {
			t.Errorf("expected 3 cells, got %d", n)
		}
	}
}
