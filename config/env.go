package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/strands/parameter"
)

// envSetter applies one STRANDS_* variable to a config
type envSetter func(c *Config, v string) error

var envSetters = map[string]envSetter{
	"COUNT": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		c.StrandCount = n
		return err
	},
	"GRAVITY":        floatSetter(func(c *Config) *float64 { return &c.Physics.Gravity }),
	"FRICTION":       floatSetter(func(c *Config) *float64 { return &c.Physics.Friction }),
	"POINTER_RADIUS": floatSetter(func(c *Config) *float64 { return &c.Pointer.Radius }),
	"POINTER_IDLE_MS": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		c.Pointer.IdleTimeoutMS = n
		return err
	},
	"FPS": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		c.Display.FrameRate = n
		return err
	},
	"HUD":    boolSetter(func(c *Config) *bool { return &c.Display.ShowHUD }),
	"AUDIO":  boolSetter(func(c *Config) *bool { return &c.Audio.Enabled }),
	"VOLUME": floatSetter(func(c *Config) *float64 { return &c.Audio.Volume }),
	"DEBUG":  boolSetter(func(c *Config) *bool { return &c.Debug }),
}

func floatSetter(field func(*Config) *float64) envSetter {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func boolSetter(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// LoadEnv loads a dotenv file into the process environment without overriding set variables
// A missing file is not an error
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from STRANDS_* variables found through lookup
// Unparseable values are reported and leave the field unchanged
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	for suffix, set := range envSetters {
		key := parameter.EnvPrefix + suffix
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		next := *c
		if err := set(&next, v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			continue
		}
		*c = next
	}
	return errors.Join(errs...)
}
