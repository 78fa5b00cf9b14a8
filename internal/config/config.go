// Package config loads and saves run configuration for the hamforge CLI
// and carries the static preset table of parameter sets per model.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "jaynes-cummings"
	DefaultDataDir = ".hamforge"
)

// Config selects a model and overrides its parameters. Params uses the
// model's documented parameter names (N, wc, wa, g, ...); names absent
// from the map keep their catalogue reference values.
type Config struct {
	Model   string             `yaml:"model"`
	Preset  string             `yaml:"preset,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
	DataDir string             `yaml:"data_dir,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:   DefaultModel,
		DataDir: DefaultDataDir,
		Params:  map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merged returns the preset parameters (when a preset is named) overlaid
// with the config's explicit Params.
func (c *Config) Merged() map[string]float64 {
	out := map[string]float64{}
	if c.Preset != "" {
		for k, v := range GetPreset(c.Model, c.Preset) {
			out[k] = v
		}
	}
	for k, v := range c.Params {
		out[k] = v
	}
	return out
}
