// Package config loads the runtime settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Seed drives orb placement. 0 seeds from the clock.
	Seed     uint64   `yaml:"seed"`
	Sound    bool     `yaml:"sound"`
	Window   Window   `yaml:"window"`
	Headless Headless `yaml:"headless"`
	Terminal Terminal `yaml:"terminal"`
	Log      Log      `yaml:"log"`
}

type Window struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

type Headless struct {
	Hz    int    `yaml:"hz"`
	Ticks uint64 `yaml:"ticks"`
}

type Terminal struct {
	Hz   int           `yaml:"hz"`
	// Hold is how long a key stays down after its last repeat, e.g. "750ms".
	Hold time.Duration `yaml:"hold"`
}

type Log struct {
	Level    string   `yaml:"level"`
	Encoding string   `yaml:"encoding"`
	Output   []string `yaml:"output"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Sound:    true,
		Window:   Window{Scale: 1, TPS: 60},
		Headless: Headless{Hz: 60},
		Terminal: Terminal{Hz: 60, Hold: 750 * time.Millisecond},
		Log: Log{
			Level:    "info",
			Encoding: "console",
			Output:   []string{"stderr"},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch {
	case c.Window.Scale < 1:
		return fmt.Errorf("window.scale must be >= 1, got %d", c.Window.Scale)
	case c.Window.TPS < 1:
		return fmt.Errorf("window.tps must be >= 1, got %d", c.Window.TPS)
	case c.Headless.Hz < 1:
		return fmt.Errorf("headless.hz must be >= 1, got %d", c.Headless.Hz)
	case c.Terminal.Hz < 1:
		return fmt.Errorf("terminal.hz must be >= 1, got %d", c.Terminal.Hz)
	case c.Terminal.Hold <= 0:
		return fmt.Errorf("terminal.hold must be positive, got %v", c.Terminal.Hold)
	}
	return nil
}
