package render

import (
	"image/color"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestSceneShapes(t *testing.T) {
	s := NewScene(700, 500, color.RGBA{A: 255}, 0)

	s.DrawLine(Arm1, 0, 0, 10, 10, white)
	s.DrawCircle(Orb1, 10, 10, 5, white)
	s.MoveLine(Arm1, 1, 2, 3, 4)
	s.MoveCircle(Orb1, 2, -3)

	l, ok := s.Line(Arm1)
	if !ok {
		t.Fatal("arm1 missing")
	}
	if l.X0 != 1 || l.Y0 != 2 || l.X1 != 3 || l.Y1 != 4 {
		t.Errorf("line not moved: %+v", l)
	}

	c, ok := s.Circle(Orb1)
	if !ok {
		t.Fatal("orb1 missing")
	}
	if c.CX != 12 || c.CY != 7 || c.R != 5 {
		t.Errorf("circle not moved by delta: %+v", c)
	}

	if len(s.Lines()) != 1 || len(s.Circles()) != 1 {
		t.Errorf("expected one line and one circle, got %d and %d", len(s.Lines()), len(s.Circles()))
	}
}

func TestSceneMoveUnknownIsNoop(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 0)
	s.MoveLine("nope", 1, 1, 1, 1)
	s.MoveCircle("nope", 1, 1)
	if len(s.Lines()) != 0 || len(s.Circles()) != 0 {
		t.Error("moving unknown shapes must not create them")
	}
}

func TestSceneTraceUnbounded(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 0)
	for i := 0; i < 5000; i++ {
		s.DrawTraceSegment(float64(i), 0, float64(i+1), 0, white)
	}
	if got := len(s.Trace()); got != 5000 {
		t.Errorf("expected 5000 segments, got %d", got)
	}
	if s.Trace()[0].X0 != 0 || s.Trace()[4999].X1 != 5000 {
		t.Error("trace must keep append order")
	}
}

func TestSceneTraceLimit(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 3)
	for i := 0; i < 5; i++ {
		s.DrawTraceSegment(float64(i), 0, float64(i+1), 0, white)
	}

	trace := s.Trace()
	if len(trace) != 3 {
		t.Fatalf("expected 3 retained segments, got %d", len(trace))
	}
	if trace[0].X0 != 2 || trace[2].X0 != 4 {
		t.Errorf("oldest segments should be dropped first: %+v", trace)
	}
	if s.TraceLen() != 5 {
		t.Errorf("TraceLen should count all segments, got %d", s.TraceLen())
	}
}

func TestSceneTraceSince(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 4)
	for i := 0; i < 6; i++ {
		s.DrawTraceSegment(float64(i), 0, float64(i+1), 0, white)
	}

	tests := []struct {
		since int
		want  int
		first float64
	}{
		{0, 4, 2},
		{3, 3, 3},
		{5, 1, 5},
		{6, 0, 0},
	}
	for _, tt := range tests {
		got := s.TraceSince(tt.since)
		if len(got) != tt.want {
			t.Errorf("TraceSince(%d): got %d segments, want %d", tt.since, len(got), tt.want)
			continue
		}
		if tt.want > 0 && got[0].X0 != tt.first {
			t.Errorf("TraceSince(%d): first segment starts at %g, want %g", tt.since, got[0].X0, tt.first)
		}
	}
}

func TestSceneTraceRingWraps(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 4)
	for i := 0; i < 10; i++ {
		s.DrawTraceSegment(float64(i), 0, float64(i+1), 0, white)
	}

	trace := s.Trace()
	if len(trace) != 4 {
		t.Fatalf("expected 4 retained segments, got %d", len(trace))
	}
	for i, seg := range trace {
		if want := float64(6 + i); seg.X0 != want {
			t.Errorf("segment %d starts at %g, want %g", i, seg.X0, want)
		}
	}

	// the last three cross the physical end of the ring
	since := s.TraceSince(7)
	if len(since) != 3 || since[0].X0 != 7 || since[2].X0 != 9 {
		t.Errorf("TraceSince(7) = %+v", since)
	}
	if s.TraceLen() != 10 {
		t.Errorf("TraceLen = %d, want 10", s.TraceLen())
	}
}

func TestSceneTraceRingKeepsCapacity(t *testing.T) {
	s := NewScene(10, 10, color.RGBA{}, 100)
	for i := 0; i < 10000; i++ {
		s.DrawTraceSegment(float64(i), 0, float64(i+1), 0, white)
	}
	if cap(s.trace) > 1024 {
		t.Errorf("ring should not grow past its limit, cap=%d", cap(s.trace))
	}
	if got := s.TraceSince(s.TraceLen() - 1); len(got) != 1 || got[0].X0 != 9999 {
		t.Errorf("newest segment = %+v", got)
	}
}
