package render

import (
	"context"
	"errors"

	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/physics"
	"go.uber.org/zap"
)

// ErrStopped is returned by Run when the host asks the loop to stop.
var ErrStopped = errors.New("render: stopped by host")

// Bridge couples one simulation to one surface. It is driven from a single
// goroutine: exactly one Advance happens between two rendered frames.
type Bridge struct {
	sim     *physics.Simulation
	surface Surface
	style   Style
	origin  Point
	log     *zap.Logger

	pos    Positions
	frames int
	ready  bool
	err    error
}

func NewBridge(sim *physics.Simulation, surface Surface, style Style, origin Point, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		sim:     sim,
		surface: surface,
		style:   style,
		origin:  origin,
		log:     log,
	}
}

// Setup draws the arms and orbs at the initial state.
func (b *Bridge) Setup() {
	s := b.sim.State()
	b.pos = Project(s.Theta1, s.Theta2, b.sim.Params(), b.origin)

	p, o := b.pos, b.origin
	b.surface.DrawLine(Arm1, o.X, o.Y, p.X1, p.Y1, b.style.ArmColor)
	b.surface.DrawLine(Arm2, p.X1, p.Y1, p.X2, p.Y2, b.style.ArmColor)
	b.surface.DrawCircle(Orb1, p.X1, p.Y1, b.style.Orb1Radius, b.style.Orb1Color)
	b.surface.DrawCircle(Orb2, p.X2, p.Y2, b.style.Orb2Radius, b.style.Orb2Color)
	b.ready = true

	b.log.Debug("scene ready",
		zap.Float64("theta1", s.Theta1),
		zap.Float64("theta2", s.Theta2),
		zap.Float64("origin_x", o.X),
		zap.Float64("origin_y", o.Y),
	)
}

// Frame renders the current state and then advances the simulation once.
// On overflow the frame stays drawn, the error is latched and returned.
func (b *Bridge) Frame() error {
	if b.err != nil {
		return b.err
	}
	if !b.ready {
		b.Setup()
	}

	prev := b.pos
	s := b.sim.State()
	b.pos = Project(s.Theta1, s.Theta2, b.sim.Params(), b.origin)

	p, o := b.pos, b.origin
	b.surface.MoveLine(Arm1, o.X, o.Y, p.X1, p.Y1)
	b.surface.MoveLine(Arm2, p.X1, p.Y1, p.X2, p.Y2)
	b.surface.MoveCircle(Orb1, p.X1-prev.X1, p.Y1-prev.Y1)
	b.surface.MoveCircle(Orb2, p.X2-prev.X2, p.Y2-prev.Y2)
	b.surface.DrawTraceSegment(prev.X2, prev.Y2, p.X2, p.Y2, b.style.TraceColor)
	b.frames++

	if err := b.sim.Advance(); err != nil {
		b.err = err
		last := b.sim.State()
		b.log.Error("simulation halted",
			zap.Error(err),
			zap.Int("frame", b.frames),
			zap.Float64("theta1", last.Theta1),
			zap.Float64("theta2", last.Theta2),
			zap.Float64("omega1", last.Omega1),
			zap.Float64("omega2", last.Omega2),
		)
		return err
	}
	return nil
}

// Run renders frames until the simulation fails, ctx is done or yield
// returns false. yield is the host's suspension point between frames.
func (b *Bridge) Run(ctx context.Context, yield func() bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := b.Frame(); err != nil {
			return err
		}
		if yield != nil && !yield() {
			return ErrStopped
		}
	}
}

func (b *Bridge) Positions() Positions { return b.pos }
func (b *Bridge) Origin() Point        { return b.origin }
func (b *Bridge) Frames() int          { return b.frames }
func (b *Bridge) Err() error           { return b.err }
func (b *Bridge) State() dynamo.State  { return b.sim.State() }

// Halted reports whether the simulation has overflowed.
func (b *Bridge) Halted() bool {
	return errors.Is(b.err, dynamo.ErrNumericalOverflow)
}
