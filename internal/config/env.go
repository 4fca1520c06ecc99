package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvGravity     = "BOUNCE_GRAVITY"
	EnvRestitution = "BOUNCE_RESTITUTION"
	EnvSeed        = "BOUNCE_SEED"
	EnvFPS         = "BOUNCE_FPS"
	EnvTheme       = "BOUNCE_THEME"
	EnvDebug       = "BOUNCE_DEBUG"
)

// LoadDotEnv loads a .env file if present. Existing variables win.
func LoadDotEnv(files ...string) {
	// a missing .env is the common case
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides fields from BOUNCE_* variables.
func (c *Config) ApplyEnv() error {
	if err := envFloat(EnvGravity, &c.World.Gravity); err != nil {
		return err
	}
	if err := envFloat(EnvRestitution, &c.World.Restitution); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = fps
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	return nil
}

// Debug reports whether BOUNCE_DEBUG is set to a true value.
func Debug() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvDebug))
	return err == nil && v
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
