package config

import (
	"sort"
	"testing"
)

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Initial.Theta1 != 0.3 || cfg.Initial.Theta2 != 0.3 {
		t.Errorf("expected theta 0.3, got %+v", cfg.Initial)
	}

	damped := GetPreset("damped")
	if damped.Physics.Mu1 >= 1 || damped.Physics.Mu2 >= 1 {
		t.Errorf("damped preset should damp both arms: %+v", damped.Physics)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsDoNotShareState(t *testing.T) {
	a := GetPreset("chaos")
	a.Initial.Theta1 = 42
	b := GetPreset("chaos")
	if b.Initial.Theta1 == 42 {
		t.Error("presets must return fresh configs")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("presets should be sorted: %v", names)
	}
}
