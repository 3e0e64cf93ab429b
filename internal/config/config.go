package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 480
	DefaultTitle   = "Pendulum"
	DefaultFPS     = 60
	DefaultOriginX = 400.0
	DefaultOriginY = 0.0
	DefaultRadius  = 200.0
	DefaultAngle   = 1.0
	DefaultMass    = 1.0
	DefaultGravity = 0.5
)

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Pendulum   PendulumConfig   `yaml:"pendulum"`
	Validation ValidationConfig `yaml:"validation"`
	Theme      string           `yaml:"theme"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type PendulumConfig struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Radius  float64 `yaml:"radius"`
	Angle   float64 `yaml:"angle"`
	Mass    float64 `yaml:"mass"`
	Gravity float64 `yaml:"gravity"`
}

// ValidationConfig enables the optional input boundary. Both fields
// default to off, so no pointer input is rejected or clamped.
type ValidationConfig struct {
	RejectNonFinite bool    `yaml:"reject_nonfinite"`
	MinRadius       float64 `yaml:"min_radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Pendulum: PendulumConfig{
			OriginX: DefaultOriginX,
			OriginY: DefaultOriginY,
			Radius:  DefaultRadius,
			Angle:   DefaultAngle,
			Mass:    DefaultMass,
			Gravity: DefaultGravity,
		},
		Theme: "sky",
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

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	return nil
}
