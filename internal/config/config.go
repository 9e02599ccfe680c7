// Package config loads the host-side presets: window geometry, the default
// field, and per-field initial parameters. Values are static once loaded;
// the live parameter state belongs to the engine handle.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all host presets.
type Config struct {
	Screen ScreenConfig           `yaml:"screen"`
	Field  string                 `yaml:"field"`
	Fields map[string]FieldPreset `yaml:"fields"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldPreset holds the initial parameter values for one field variant.
type FieldPreset struct {
	Speed    float64 `yaml:"speed"`
	Density  float64 `yaml:"density"`
	Zoom     float64 `yaml:"zoom"`
	ZoomAuto bool    `yaml:"zoom_auto"`
}

// Load parses the embedded defaults and, when path is non-empty, overlays
// the user's file on top of them.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Preset returns the preset for a field, falling back to a neutral default
// for fields the file does not mention.
func (c *Config) Preset(field string) FieldPreset {
	if p, ok := c.Fields[field]; ok {
		if p.Speed <= 0 {
			p.Speed = 1
		}
		if p.Zoom <= 0 {
			p.Zoom = 1
		}
		return p
	}
	return FieldPreset{Speed: 1, Density: 0.02, Zoom: 1}
}
