// Package config loads the optional YAML run configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the output file written when none is configured.
const DefaultOutput = "MotionVii_SAAP_2026.xlsx"

// Config is the run configuration.
type Config struct {
	// Output is the xlsx file to write.
	Output string `yaml:"output" validate:"required"`
	// Strict rejects status and priority values outside their palettes.
	Strict bool `yaml:"strict"`
	// Title and Author are stored in the document properties.
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	// Theme overrides the default palette. Omitted keys keep their defaults.
	Theme styles.Theme `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Title:  "MotionVii SAAP 2026",
		Author: "MotionVii",
		Theme:  styles.DefaultTheme(),
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration and its theme colors.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ValidateTheme checks that every theme color is set and well formed.
func ValidateTheme(t styles.Theme) error {
	return validator.New().Struct(t)
}
