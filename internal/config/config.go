// Package config holds the canonical names used across boxed and the
// boxed.yaml configuration read by the command line tools.
//
// A configuration file looks like:
//
//	text:
//	  mode: unicode      # or ascii
//	output:
//	  color: auto        # auto, always, never
//	  format: inspect    # inspect, yaml, json
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level boxed.yaml configuration.
type Config struct {
	// Text selects the text collaborator used for Str operations.
	Text TextConfig `yaml:"text"`

	// Output controls how boxinspect renders values.
	Output OutputConfig `yaml:"output"`
}

// TextConfig selects the text collaborator.
type TextConfig struct {
	// Mode is "unicode" (default) or "ascii". The ascii mode is a degraded
	// fallback for environments without Unicode support; it rejects
	// non-ASCII input rather than mangling it.
	Mode string `yaml:"mode,omitempty"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Color is "auto" (default), "always" or "never".
	Color string `yaml:"color,omitempty"`

	// Format is "inspect" (default), "yaml" or "json".
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a boxed.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses boxed.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig returns the path of the nearest boxed.yaml (or boxed.yml) in
// dir or one of its ancestors. An empty path with a nil error means no
// file exists up to the root.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// envOverrides are read from the environment by ApplyEnv.
type envOverrides struct {
	// ENV: BOXED_TEXT_MODE
	TextMode string `env:"BOXED_TEXT_MODE"`
	// ENV: BOXED_COLOR
	Color string `env:"BOXED_COLOR"`
	// ENV: BOXED_FORMAT
	Format string `env:"BOXED_FORMAT"`
}

// ApplyEnv overrides c with any BOXED_* environment variables that are set
// and validates the result.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.TextMode != "" {
		c.Text.Mode = env.TextMode
	}
	if env.Color != "" {
		c.Output.Color = env.Color
	}
	if env.Format != "" {
		c.Output.Format = env.Format
	}
	return c.Validate("environment")
}

// Validate checks the configuration for semantic errors. source names
// where the values came from in error messages.
func (c *Config) Validate(source string) error {
	switch c.Text.Mode {
	case TextModeUnicode, TextModeASCII:
	default:
		return fmt.Errorf("%s: text.mode: unknown mode %q (want %s or %s)",
			source, c.Text.Mode, TextModeUnicode, TextModeASCII)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: output.color: unknown value %q", source, c.Output.Color)
	}

	switch c.Output.Format {
	case FormatInspect, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%s: output.format: unknown format %q", source, c.Output.Format)
	}
	return nil
}

// setDefaults fills in omitted fields.
func (c *Config) setDefaults() {
	if c.Text.Mode == "" {
		c.Text.Mode = TextModeUnicode
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatInspect
	}
}
