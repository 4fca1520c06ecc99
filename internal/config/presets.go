package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/bounce/internal/dynamo"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"moon": {
		World: WorldConfig{Gravity: 200, Restitution: 0.82, Friction: 0.995, Drag: 0.999},
		Ball:  BallConfig{Radius: 18, X: 160, Y: 120, VX: 280, VY: -40},
	},
	"superball": {
		World: WorldConfig{Gravity: 1200, Restitution: 0.99, Friction: 0.999, Drag: 1.0},
		Ball:  BallConfig{Radius: 12, X: 160, Y: 120, VX: 420, VY: -200},
	},
	"heavy": {
		World: WorldConfig{Gravity: 4000, Restitution: 0.6, Friction: 0.98, Drag: 0.999},
		Ball:  BallConfig{Radius: 28, X: 160, Y: 120, VX: 280, VY: -40},
	},
	"clay": {
		World: WorldConfig{Gravity: 1200, Restitution: 0.1, Friction: 0.9, Drag: 0.995},
		Ball:  BallConfig{Radius: 18, X: 160, Y: 120, VX: 280, VY: -40},
	},
}

// GetPreset returns a copy of the named preset with frame settings
// filled from the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.World = p.World
	cfg.Ball = p.Ball
	return cfg
}

// LookupPreset is GetPreset with an error naming the alternatives.
func LookupPreset(name string) (*Config, error) {
	if cfg := GetPreset(name); cfg != nil {
		return cfg, nil
	}
	return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
