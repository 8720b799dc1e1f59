package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/dpsim/internal/metrics"
	"github.com/san-kum/dpsim/internal/render"
	"go.uber.org/zap"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColHalt    = rl.NewColor(255, 68, 68, 255)
)

// App hosts a bridge in a raylib window. The scene is the surface the bridge
// draws on; the window mirrors it every frame.
type App struct {
	Bridge  *render.Bridge
	Scene   *render.Scene
	Energy  *metrics.EnergyDrift
	Title   string
	FPS     int
	Running bool

	width, height int
	background    rl.Color
	trace         rl.RenderTexture2D
	traced        int
	log           *zap.Logger
}

// NewApp wires the window host. fps <= 0 leaves the frame rate uncapped.
func NewApp(bridge *render.Bridge, scene *render.Scene, energy *metrics.EnergyDrift, fps int, title string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	w, h := scene.Size()
	return &App{
		Bridge:     bridge,
		Scene:      scene,
		Energy:     energy,
		Title:      title,
		FPS:        fps,
		Running:    true,
		width:      w,
		height:     h,
		background: toColor(scene.Background()),
		log:        log,
	}
}

// Run opens the window and blocks until it is closed. The window stays open
// after the simulation halts so the final picture remains visible.
func (a *App) Run() {
	a.initWindow()
	defer rl.CloseWindow()

	a.trace = rl.LoadRenderTexture(int32(a.width), int32(a.height))
	defer rl.UnloadRenderTexture(a.trace)

	rl.BeginTextureMode(a.trace)
	rl.ClearBackground(a.background)
	rl.EndTextureMode()

	a.Bridge.Setup()
	a.Energy.Observe(a.Bridge.State())

	a.RunLoop()
	a.log.Info("window closed", zap.Int("frames", a.Bridge.Frames()))
}

func (a *App) initWindow() {
	rl.InitWindow(int32(a.width), int32(a.height), a.Title)
	if a.FPS > 0 {
		rl.SetTargetFPS(int32(a.FPS))
	}
	rl.SetExitKey(rl.KeyQ)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) && !a.Bridge.Halted() {
		a.Running = !a.Running
	}
	if !a.Running || a.Bridge.Err() != nil {
		return
	}
	if err := a.Bridge.Frame(); err != nil {
		a.Running = false
		return
	}
	a.Energy.Observe(a.Bridge.State())
}

// accumulate draws trace segments that arrived since the last frame into the
// trace texture, so the full path never has to be replayed.
func (a *App) accumulate() {
	segs := a.Scene.TraceSince(a.traced)
	a.traced = a.Scene.TraceLen()
	if len(segs) == 0 {
		return
	}

	rl.BeginTextureMode(a.trace)
	for _, s := range segs {
		rl.DrawLineV(vec(s.X0, s.Y0), vec(s.X1, s.Y1), toColor(s.Color))
	}
	rl.EndTextureMode()
}

func (a *App) Draw() {
	a.accumulate()

	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	// render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(a.width), -float32(a.height))
	rl.DrawTextureRec(a.trace.Texture, src, rl.NewVector2(0, 0), rl.White)

	for _, l := range a.Scene.Lines() {
		rl.DrawLineEx(vec(l.X0, l.Y0), vec(l.X1, l.Y1), 2, toColor(l.Color))
	}
	for _, c := range a.Scene.Circles() {
		rl.DrawCircleV(vec(c.CX, c.CY), float32(c.R), toColor(c.Color))
	}

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	for i, line := range hudLines(a.Bridge, a.Energy) {
		rl.DrawText(line, 10, int32(10+16*i), 14, ColText)
	}

	status, col := "RUNNING", ColText
	switch {
	case a.Bridge.Err() != nil:
		status, col = "HALTED", ColHalt
	case !a.Running:
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, int32(a.width)-90, 10, 14, col)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, int32(a.height)-20, 12, ColTextDim)
}

// hudLines formats the overlay text for the current frame.
func hudLines(b *render.Bridge, e *metrics.EnergyDrift) []string {
	s := b.State()
	lines := []string{
		fmt.Sprintf("frame  %d", b.Frames()),
		fmt.Sprintf("theta  %.3f  %.3f", s.Theta1, s.Theta2),
		fmt.Sprintf("omega  %.3f  %.3f", s.Omega1, s.Omega2),
		fmt.Sprintf("energy %.1f (drift %.1e)", e.Current(), e.Value()),
	}
	if err := b.Err(); err != nil {
		lines = append(lines, err.Error())
	}
	return lines
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}
