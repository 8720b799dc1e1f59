package config

import (
	"math"
	"sort"
)

// Presets only vary the physics and starting state; rendering keeps defaults.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"gentle": func(c *Config) {
		c.Initial = InitialConfig{Theta1: 0.3, Theta2: 0.3}
	},
	"damped": func(c *Config) {
		c.Physics.Mu1, c.Physics.Mu2 = 0.995, 0.995
	},
	"chaos": func(c *Config) {
		c.Initial = InitialConfig{Theta1: 3.0, Theta2: 3.0}
	},
	"folded": func(c *Config) {
		c.Initial = InitialConfig{Theta1: math.Pi / 2, Theta2: -math.Pi / 2}
	},
	"heavy_tip": func(c *Config) {
		c.Physics.M1, c.Physics.M2 = 10, 80
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
