package config

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 60
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTheme  = "minimal"
	DefaultMaxDt  = 1.0 / 20
)

type Config struct {
	World  WorldConfig `yaml:"world" json:"world"`
	Ball   BallConfig  `yaml:"ball" json:"ball"`
	FPS    int         `yaml:"fps" json:"fps"`
	MaxDt  float64     `yaml:"max_dt" json:"max_dt"`
	Seed   int64       `yaml:"seed" json:"seed"`
	Theme  string      `yaml:"theme" json:"theme"`
	Width  float64     `yaml:"width" json:"width"`
	Height float64     `yaml:"height" json:"height"`
}

type WorldConfig struct {
	Gravity     float64 `yaml:"gravity" json:"gravity"`
	Restitution float64 `yaml:"restitution" json:"restitution"`
	Friction    float64 `yaml:"friction" json:"friction"`
	Drag        float64 `yaml:"drag" json:"drag"`
}

type BallConfig struct {
	Radius float64 `yaml:"radius" json:"radius"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	VX     float64 `yaml:"vx" json:"vx"`
	VY     float64 `yaml:"vy" json:"vy"`
}

func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Gravity:     physics.DefaultGravity,
			Restitution: physics.DefaultRestitution,
			Friction:    physics.DefaultFriction,
			Drag:        physics.DefaultDrag,
		},
		Ball: BallConfig{
			Radius: physics.DefaultRadius,
			X:      160,
			Y:      120,
			VX:     physics.ResetVX,
			VY:     physics.ResetVY,
		},
		FPS:    DefaultFPS,
		MaxDt:  DefaultMaxDt,
		Theme:  DefaultTheme,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Load reads a yaml file over the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in a yaml file onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, cfg)
}

func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports the first invalid value as a *dynamo.ParamError.
func (c *Config) Validate() error {
	if err := c.PhysicsWorld().Validate(); err != nil {
		return err
	}
	switch {
	case c.Ball.Radius <= 0:
		return dynamo.NewParamError("ball.radius", c.Ball.Radius)
	case c.FPS <= 0:
		return dynamo.NewParamError("fps", float64(c.FPS))
	case c.MaxDt <= 0:
		return dynamo.NewParamError("max_dt", c.MaxDt)
	}
	if !c.Bounds().Fits(c.Ball.Radius) {
		return &dynamo.ParamError{Name: "width", Value: c.Width, Wrapped: dynamo.ErrInvalidBounds}
	}
	return nil
}

func (c *Config) PhysicsWorld() physics.World {
	return physics.World{
		Gravity:     c.World.Gravity,
		Restitution: c.World.Restitution,
		Friction:    c.World.Friction,
		Drag:        c.World.Drag,
	}
}

func (c *Config) PhysicsBall() physics.Ball {
	return physics.Ball{
		X:  c.Ball.X,
		Y:  c.Ball.Y,
		VX: c.Ball.VX,
		VY: c.Ball.VY,
		R:  c.Ball.Radius,
	}
}

func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{W: c.Width, H: c.Height}
}
