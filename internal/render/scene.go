package render

import "image/color"

type Line struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

type Circle struct {
	CX, CY, R float64
	Color     color.RGBA
}

// Segment is one piece of the outer mass's path.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

// Scene is an in-memory Surface. Hosts draw from it after each frame.
//
// The trace is append-only. With a positive limit it becomes a ring that
// overwrites the oldest segment once full; TraceLen keeps counting every
// segment ever appended so incremental readers can use TraceSince.
type Scene struct {
	width, height int
	background    color.RGBA
	lines         map[string]*Line
	circles       map[string]*Circle
	order         []string
	trace         []Segment
	head          int // oldest retained segment once the ring is full
	traceLimit    int
	dropped       int
}

func NewScene(width, height int, background color.RGBA, traceLimit int) *Scene {
	if traceLimit < 0 {
		traceLimit = 0
	}
	return &Scene{
		width:      width,
		height:     height,
		background: background,
		lines:      make(map[string]*Line),
		circles:    make(map[string]*Circle),
		trace:      make([]Segment, 0, 1024),
		traceLimit: traceLimit,
	}
}

func (s *Scene) DrawLine(id string, x0, y0, x1, y1 float64, c color.RGBA) {
	if _, ok := s.lines[id]; !ok {
		s.order = append(s.order, id)
	}
	s.lines[id] = &Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c}
}

func (s *Scene) MoveLine(id string, x0, y0, x1, y1 float64) {
	l, ok := s.lines[id]
	if !ok {
		return
	}
	l.X0, l.Y0, l.X1, l.Y1 = x0, y0, x1, y1
}

func (s *Scene) DrawCircle(id string, cx, cy, r float64, c color.RGBA) {
	if _, ok := s.circles[id]; !ok {
		s.order = append(s.order, id)
	}
	s.circles[id] = &Circle{CX: cx, CY: cy, R: r, Color: c}
}

func (s *Scene) MoveCircle(id string, dx, dy float64) {
	c, ok := s.circles[id]
	if !ok {
		return
	}
	c.CX += dx
	c.CY += dy
}

func (s *Scene) DrawTraceSegment(x0, y0, x1, y1 float64, c color.RGBA) {
	seg := Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c}
	if s.traceLimit == 0 || len(s.trace) < s.traceLimit {
		s.trace = append(s.trace, seg)
		return
	}
	s.trace[s.head] = seg
	s.head = (s.head + 1) % len(s.trace)
	s.dropped++
}

func (s *Scene) Size() (int, int)       { return s.width, s.height }
func (s *Scene) Background() color.RGBA { return s.background }

// Lines returns the arm lines in draw order.
func (s *Scene) Lines() []Line {
	out := make([]Line, 0, len(s.lines))
	for _, id := range s.order {
		if l, ok := s.lines[id]; ok {
			out = append(out, *l)
		}
	}
	return out
}

// Circles returns the orbs in draw order.
func (s *Scene) Circles() []Circle {
	out := make([]Circle, 0, len(s.circles))
	for _, id := range s.order {
		if c, ok := s.circles[id]; ok {
			out = append(out, *c)
		}
	}
	return out
}

func (s *Scene) Line(id string) (Line, bool) {
	l, ok := s.lines[id]
	if !ok {
		return Line{}, false
	}
	return *l, true
}

func (s *Scene) Circle(id string) (Circle, bool) {
	c, ok := s.circles[id]
	if !ok {
		return Circle{}, false
	}
	return *c, true
}

// Trace returns the retained trace segments, oldest first. The slice may be
// shared with the scene and must not be modified.
func (s *Scene) Trace() []Segment { return s.retained(0) }

// TraceLen counts every segment ever appended, including dropped ones.
func (s *Scene) TraceLen() int { return s.dropped + len(s.trace) }

// TraceSince returns the retained segments appended after the first n.
func (s *Scene) TraceSince(n int) []Segment {
	i := n - s.dropped
	if i < 0 {
		i = 0
	}
	if i >= len(s.trace) {
		return nil
	}
	return s.retained(i)
}

// retained returns the segments from the i-th oldest on. Only a wrapped ring
// needs a copy.
func (s *Scene) retained(i int) []Segment {
	if s.head == 0 {
		return s.trace[i:]
	}
	n := len(s.trace)
	out := make([]Segment, 0, n-i)
	for ; i < n; i++ {
		out = append(out, s.trace[(s.head+i)%n])
	}
	return out
}
