package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dpsim/internal/metrics"
	"github.com/san-kum/dpsim/internal/render"
)

const (
	width  = 80
	height = 24
)

// frameMsg asks for one frame. seq discards frames scheduled before a pause.
type frameMsg struct{ seq int }

// Model contains the bridge, the scene it draws on and the terminal canvas.
type Model struct {
	bridge     *render.Bridge
	scene      *render.Scene
	energy     *metrics.EnergyDrift
	canvas     *Canvas
	traceLayer *Canvas
	traced     int
	view       Viewport
	fps        int
	seq        int
	running    bool
	title      string
	fg         lipgloss.Style
}

// NewModel prepares the live view. fps <= 0 runs uncapped.
func NewModel(bridge *render.Bridge, scene *render.Scene, energy *metrics.EnergyDrift, fps int, title string) Model {
	canvas := NewCanvas(width, height)
	dotsW, dotsH := canvas.Dots()
	sceneW, sceneH := scene.Size()

	bridge.Setup()
	energy.Observe(bridge.State())

	m := Model{
		bridge:     bridge,
		scene:      scene,
		energy:     energy,
		canvas:     canvas,
		traceLayer: NewCanvas(width, height),
		view:       NewViewport(sceneW, sceneH, dotsW, dotsH),
		fps:        fps,
		running:    true,
		title:      title,
		fg:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
	if lines := scene.Lines(); len(lines) > 0 {
		m.fg = lipgloss.NewStyle().Foreground(hexColor(lines[0].Color))
	}
	m.rasterize()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.next()
}

func (m Model) next() tea.Cmd {
	seq := m.seq
	if m.fps <= 0 {
		return func() tea.Msg { return frameMsg{seq: seq} }
	}
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.bridge.Err() != nil {
				return m, nil
			}
			m.running = !m.running
			m.seq++
			if m.running {
				return m, m.next()
			}
		}
	case frameMsg:
		if msg.seq != m.seq || !m.running {
			return m, nil
		}
		if err := m.step(); err != nil {
			m.running = false
			return m, nil
		}
		return m, m.next()
	}
	return m, nil
}

// step renders one frame through the bridge and redraws the canvas.
func (m *Model) step() error {
	err := m.bridge.Frame()
	if err == nil {
		m.energy.Observe(m.bridge.State())
	}
	m.rasterize()
	return err
}

// rasterize copies the scene onto the canvas. Trace segments are drawn once
// onto a persistent layer; arms and orbs are redrawn over it every frame.
func (m *Model) rasterize() {
	for _, seg := range m.scene.TraceSince(m.traced) {
		x0, y0 := m.view.Map(seg.X0, seg.Y0)
		x1, y1 := m.view.Map(seg.X1, seg.Y1)
		m.traceLayer.DrawLine(x0, y0, x1, y1)
	}
	m.traced = m.scene.TraceLen()

	m.canvas.CopyFrom(m.traceLayer)
	for _, l := range m.scene.Lines() {
		x0, y0 := m.view.Map(l.X0, l.Y0)
		x1, y1 := m.view.Map(l.X1, l.Y1)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
	for _, c := range m.scene.Circles() {
		cx, cy := m.view.Map(c.CX, c.CY)
		m.canvas.FillCircle(cx, cy, m.view.Radius(c.R))
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.fg.Render(m.canvas.String()))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")

	switch {
	case m.bridge.Err() != nil:
		s.WriteString(statusHalted.Render("HALTED") + "\n")
		s.WriteString(valueStyle.Render(m.bridge.Err().Error()) + "\n\n")
	case m.running:
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	if hist := m.energy.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	st := m.bridge.State()
	rows := []struct{ label, value string }{
		{"Frame", fmt.Sprintf("%d", m.bridge.Frames())},
		{"Theta1", fmt.Sprintf("%.4f", st.Theta1)},
		{"Theta2", fmt.Sprintf("%.4f", st.Theta2)},
		{"Omega1", fmt.Sprintf("%.4f", st.Omega1)},
		{"Omega2", fmt.Sprintf("%.4f", st.Omega2)},
		{"Energy", fmt.Sprintf("%.2f", m.energy.Current())},
		{"Drift", fmt.Sprintf("%.2e", m.energy.Value())},
		{"Trace", fmt.Sprintf("%d", m.scene.TraceLen())},
	}
	for _, r := range rows {
		s.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause Q:Quit"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
