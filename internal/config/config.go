package config

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 1.0
	DefaultWidth      = 700
	DefaultHeight     = 500
	DefaultOrbRadius  = 11.0
	DefaultLogLevel   = "info"
	DefaultBackground = "#000000"
	DefaultArmColor   = "#ffffff"
	DefaultOrb1Color  = "#0000ff"
	DefaultOrb2Color  = "#ff0000"
	DefaultTraceColor = "#ffa500"
)

type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Initial InitialConfig `yaml:"initial"`
	Dt      float64       `yaml:"dt"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type PhysicsConfig struct {
	G   float64 `yaml:"g"`
	M1  float64 `yaml:"m1"`
	M2  float64 `yaml:"m2"`
	L1  float64 `yaml:"l1"`
	L2  float64 `yaml:"l2"`
	Mu1 float64 `yaml:"mu1"`
	Mu2 float64 `yaml:"mu2"`
}

type InitialConfig struct {
	Theta1 float64 `yaml:"theta1"`
	Theta2 float64 `yaml:"theta2"`
	Omega1 float64 `yaml:"omega1"`
	Omega2 float64 `yaml:"omega2"`
}

type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Orb1Radius float64 `yaml:"orb1_radius"`
	Orb2Radius float64 `yaml:"orb2_radius"`
	Background string  `yaml:"background"`
	ArmColor   string  `yaml:"arm_color"`
	Orb1Color  string  `yaml:"orb1_color"`
	Orb2Color  string  `yaml:"orb2_color"`
	TraceColor string  `yaml:"trace_color"`
	TraceLimit int     `yaml:"trace_limit"`
	FPS        int     `yaml:"fps"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	p := dynamo.DefaultParams()
	return &Config{
		Physics: PhysicsConfig{
			G: p.G, M1: p.M1, M2: p.M2, L1: p.L1, L2: p.L2, Mu1: p.Mu1, Mu2: p.Mu2,
		},
		Initial: InitialConfig{Theta1: math.Pi / 2, Theta2: math.Pi / 2},
		Dt:      DefaultDt,
		Render: RenderConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Orb1Radius: DefaultOrbRadius,
			Orb2Radius: DefaultOrbRadius,
			Background: DefaultBackground,
			ArmColor:   DefaultArmColor,
			Orb1Color:  DefaultOrb1Color,
			Orb2Color:  DefaultOrb2Color,
			TraceColor: DefaultTraceColor,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode writes cfg as YAML to w.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{
		G:  c.Physics.G,
		M1: c.Physics.M1, M2: c.Physics.M2,
		L1: c.Physics.L1, L2: c.Physics.L2,
		Mu1: c.Physics.Mu1, Mu2: c.Physics.Mu2,
	}
}

func (c *Config) InitialState() dynamo.State {
	return dynamo.State{
		Theta1: c.Initial.Theta1, Theta2: c.Initial.Theta2,
		Omega1: c.Initial.Omega1, Omega2: c.Initial.Omega2,
	}
}

// Origin is the pivot in screen space: the canvas center.
func (c *Config) Origin() render.Point {
	return render.Point{X: float64(c.Render.Width / 2), Y: float64(c.Render.Height / 2)}
}

func (c *Config) Style() (render.Style, error) {
	arm, err := ParseColor(c.Render.ArmColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("arm_color: %w", err)
	}
	orb1, err := ParseColor(c.Render.Orb1Color)
	if err != nil {
		return render.Style{}, fmt.Errorf("orb1_color: %w", err)
	}
	orb2, err := ParseColor(c.Render.Orb2Color)
	if err != nil {
		return render.Style{}, fmt.Errorf("orb2_color: %w", err)
	}
	trace, err := ParseColor(c.Render.TraceColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("trace_color: %w", err)
	}
	return render.Style{
		ArmColor:   arm,
		Orb1Color:  orb1,
		Orb2Color:  orb2,
		TraceColor: trace,
		Orb1Radius: c.Render.Orb1Radius,
		Orb2Radius: c.Render.Orb2Radius,
	}, nil
}

func (c *Config) BackgroundColor() (color.RGBA, error) {
	return ParseColor(c.Render.Background)
}

// NewScene builds the retained surface described by the render section.
func (c *Config) NewScene() (*render.Scene, error) {
	bg, err := c.BackgroundColor()
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return render.NewScene(c.Render.Width, c.Render.Height, bg, c.Render.TraceLimit), nil
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if !c.InitialState().IsValid() {
		return fmt.Errorf("%w: initial state is not finite", dynamo.ErrParameterBounds)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, c.Dt)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Orb1Radius < 0 || c.Render.Orb2Radius < 0 {
		return fmt.Errorf("orb radius must not be negative")
	}
	if c.Render.TraceLimit < 0 {
		return fmt.Errorf("trace_limit must not be negative, got %d", c.Render.TraceLimit)
	}
	if c.Render.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.Render.FPS)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// ParseColor accepts #rgb and #rrggbb hex colors.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
