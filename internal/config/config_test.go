package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 800 || cfg.Window.Height != 480 {
		t.Errorf("expected 800x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Pendulum" {
		t.Errorf("expected title Pendulum, got %s", cfg.Window.Title)
	}
	if cfg.Pendulum.Gravity != 0.5 || cfg.Pendulum.Mass != 1.0 {
		t.Error("unexpected pendulum defaults")
	}
	if cfg.Validation.RejectNonFinite || cfg.Validation.MinRadius != 0 {
		t.Error("validation must default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero width")
	}

	cfg = DefaultConfig()
	cfg.Window.FPS = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative fps")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pendlab.yaml")

	cfg := DefaultConfig()
	cfg.Pendulum.Gravity = 1.3
	cfg.Pendulum.Radius = 150
	cfg.Validation.MinRadius = 2.5
	cfg.Theme = "night"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Pendulum.Gravity != 1.3 || loaded.Pendulum.Radius != 150 {
		t.Error("pendulum section did not survive roundtrip")
	}
	if loaded.Validation.MinRadius != 2.5 {
		t.Error("validation section did not survive roundtrip")
	}
	if loaded.Theme != "night" {
		t.Errorf("expected theme night, got %s", loaded.Theme)
	}
	// untouched fields keep defaults
	if loaded.Window.Width != 800 {
		t.Errorf("expected default width, got %d", loaded.Window.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("moon")
	if p == nil {
		t.Fatal("expected moon preset")
	}
	if p.Gravity != 0.1 {
		t.Errorf("expected gravity 0.1, got %f", p.Gravity)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "classic" {
			found = true
		}
	}
	if !found {
		t.Error("expected classic in preset list")
	}
}

func TestPresetIsACopy(t *testing.T) {
	p := GetPreset("classic")
	p.Gravity = 99

	if Presets["classic"].Gravity == 99 {
		t.Error("GetPreset must return a copy")
	}
}
