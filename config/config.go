// Package config provides configuration loading and access for the texture
// pipeline.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all pipeline configuration parameters.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Basis    BasisConfig    `yaml:"basis"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Worms    WormsConfig    `yaml:"worms"`
	Points   PointsConfig   `yaml:"points"`
}

// OutputConfig holds the generated grid's shape.
type OutputConfig struct {
	Height   int `yaml:"height"`
	Width    int `yaml:"width"`
	Channels int `yaml:"channels"`
}

// BasisConfig holds the input FBM noise parameters.
type BasisConfig struct {
	Scale      float64 `yaml:"scale"`      // Base feature frequency
	Octaves    int     `yaml:"octaves"`    // Detail level
	Lacunarity float64 `yaml:"lacunarity"` // Frequency multiplier per octave
	Gain       float64 `yaml:"gain"`       // Amplitude multiplier per octave
	Contrast   float64 `yaml:"contrast"`   // Output exponent (1 = linear)
}

// PipelineConfig selects post-processing stages. Zero ranges disable their
// stages.
type PipelineConfig struct {
	RefractRange   float64 `yaml:"refract_range"`
	ReindexRange   float64 `yaml:"reindex_range"`
	CLUT           string  `yaml:"clut"` // color-lookup image path, "" = off
	CLUTHorizontal bool    `yaml:"clut_horizontal"`
	CLUTRange      float64 `yaml:"clut_range"`
	WithWorms      bool    `yaml:"with_worms"`
	WithSobel      bool    `yaml:"with_sobel"`
	WithNormalMap  bool    `yaml:"with_normal_map"`
	Deriv          bool    `yaml:"deriv"`
}

// WormsConfig holds the worm simulator parameters.
type WormsConfig struct {
	Behavior        string  `yaml:"behavior"` // obedient, crosshatch, unruly, chaotic
	Density         float64 `yaml:"density"`
	Duration        float64 `yaml:"duration"`
	Stride          float64 `yaml:"stride"`
	StrideDeviation float64 `yaml:"stride_deviation"`
	Background      float64 `yaml:"background"`
}

// PointsConfig holds the point-cloud generator parameters. Freq 0 disables
// point generation.
type PointsConfig struct {
	Freq         int    `yaml:"freq"`
	Distribution string `yaml:"distribution"`
	Center       bool   `yaml:"center"`
	Generations  int    `yaml:"generations"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate fails fast on shapes and parameters the pipeline would reject
// later anyway.
func (c *Config) validate() error {
	if c.Output.Height <= 0 || c.Output.Width <= 0 || c.Output.Channels <= 0 {
		return fmt.Errorf("config: invalid output shape %dx%dx%d",
			c.Output.Height, c.Output.Width, c.Output.Channels)
	}
	if c.Basis.Octaves <= 0 {
		return fmt.Errorf("config: basis octaves must be positive, got %d", c.Basis.Octaves)
	}
	if c.Worms.Density < 0 || c.Worms.Duration < 0 {
		return fmt.Errorf("config: negative worm density or duration")
	}
	if c.Points.Freq < 0 {
		return fmt.Errorf("config: negative points freq")
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
