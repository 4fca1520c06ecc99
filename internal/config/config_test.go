package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/san-kum/bounce/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.World.Gravity != 1200 || cfg.World.Restitution != 0.82 {
		t.Errorf("unexpected world %+v", cfg.World)
	}
	b := cfg.PhysicsBall()
	if b.X != 160 || b.Y != 120 || b.VX != 280 || b.VY != -40 || b.R != 18 {
		t.Errorf("unexpected ball %+v", b)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	data := []byte("world:\n  gravity: 600\nball:\n  radius: 30\nseed: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.World.Gravity != 600 {
		t.Errorf("gravity = %v, want 600", cfg.World.Gravity)
	}
	if cfg.World.Restitution != 0.82 {
		t.Errorf("unset restitution should keep default, got %v", cfg.World.Restitution)
	}
	if cfg.Ball.Radius != 30 || cfg.Seed != 7 {
		t.Errorf("unexpected ball/seed: %+v %d", cfg.Ball, cfg.Seed)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("fps = %d, want default", cfg.FPS)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	cfg := GetPreset("moon")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
		target error
	}{
		{"gravity", func(c *Config) { c.World.Gravity = 50 }, "gravity", dynamo.ErrParameterBounds},
		{"restitution", func(c *Config) { c.World.Restitution = 1 }, "restitution", dynamo.ErrParameterBounds},
		{"radius", func(c *Config) { c.Ball.Radius = 0 }, "ball.radius", dynamo.ErrParameterBounds},
		{"fps", func(c *Config) { c.FPS = 0 }, "fps", dynamo.ErrParameterBounds},
		{"max dt", func(c *Config) { c.MaxDt = -1 }, "max_dt", dynamo.ErrParameterBounds},
		{"tiny viewport", func(c *Config) { c.Width = 20 }, "width", dynamo.ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			var pe *dynamo.ParamError
			if !errors.As(err, &pe) || pe.Name != tt.param {
				t.Errorf("expected ParamError for %s, got %v", tt.param, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.World.Gravity != 200 {
		t.Errorf("expected gravity 200, got %v", cfg.World.Gravity)
	}
	if cfg.FPS != DefaultFPS || cfg.Width != DefaultWidth {
		t.Error("preset should inherit frame settings from defaults")
	}

	cfg.World.Gravity = 999
	if GetPreset("moon").World.Gravity != 200 {
		t.Error("GetPreset returned shared state")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLookupPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	_, err := LookupPreset("nonexistent")
	if !errors.Is(err, dynamo.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("presets not sorted: %v", names)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvGravity, "2500")
	t.Setenv(EnvRestitution, "0.5")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvTheme, "ocean")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.World.Gravity != 2500 || cfg.World.Restitution != 0.5 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.Seed != 99 || cfg.FPS != 30 || cfg.Theme != "ocean" {
		t.Errorf("seed/fps/theme = %d/%d/%s", cfg.Seed, cfg.FPS, cfg.Theme)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv(EnvGravity, "heavy")
	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvTheme+"=retro\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvTheme, "")
	os.Unsetenv(EnvTheme)

	LoadDotEnv(path)
	if got := os.Getenv(EnvTheme); got != "retro" {
		t.Errorf("%s = %q, want retro", EnvTheme, got)
	}
}

func TestDebug(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	if !Debug() {
		t.Error("expected debug on")
	}
	t.Setenv(EnvDebug, "nope")
	if Debug() {
		t.Error("expected debug off")
	}
}

func TestMergeOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  radius: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("moon")
	if err := cfg.Merge(path); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if cfg.World.Gravity != 200 {
		t.Errorf("merge clobbered preset gravity: %v", cfg.World.Gravity)
	}
	if cfg.Ball.Radius != 25 {
		t.Errorf("radius = %v, want 25", cfg.Ball.Radius)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultConfig()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"world:", "  gravity: 1200", "max_dt: 0.05", "theme: minimal"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded config missing %q:\n%s", want, out)
		}
	}
}
