// Package config loads the demo settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gekko3d/phonglight/rt/core"
	"github.com/gekko3d/phonglight/rt/geometry"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTitle  = "Phong Light"
	DefaultShape  = "cube"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window  Window           `yaml:"window"`
	Shape   string           `yaml:"shape"`
	Animate bool             `yaml:"animate"`
	Debug   bool             `yaml:"debug"`
	Light   core.LightInputs `yaml:"light"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Shape:   DefaultShape,
		Animate: true,
	}
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func (c *Config) Validate() error {
	if !slices.Contains(geometry.Names(), c.Shape) {
		return fmt.Errorf("unknown shape %q", c.Shape)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Shape == "" {
		c.Shape = DefaultShape
	}
}
