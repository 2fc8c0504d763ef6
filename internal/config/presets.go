package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named (Nmax, angle_limits, angle_stepsize, tolerance)
// bundle for a common heterostructure family. Fields absent from a
// preset's YAML entry are left at their zero value and never override
// Config — ApplyPreset only touches the fields a preset actually sets.
type Preset struct {
	Nmax          int64      `yaml:"nmax"`
	AngleLimits   [2]float64 `yaml:"angle_limits"`
	AngleStepsize float64    `yaml:"angle_stepsize"`
	Tolerance     float64    `yaml:"tolerance"`
}

// LoadPreset looks up name in the embedded presets document.
func LoadPreset(name string) (Preset, error) {
	var all map[string]Preset
	if err := yaml.Unmarshal(presetsYAML, &all); err != nil {
		return Preset{}, fmt.Errorf("config: parsing embedded presets: %w", err)
	}

	p, ok := all[name]
	if !ok {
		return Preset{}, fmt.Errorf("config: %q: %w", name, ErrPresetNotFound)
	}

	return p, nil
}

// ApplyPreset overlays p onto cfg, the "fourth, narrower source" that
// resolves after the TOML file and before CLI flags.
func ApplyPreset(cfg Config, p Preset) Config {
	if p.Nmax != 0 {
		cfg.Nmax = p.Nmax
	}
	if p.AngleLimits != ([2]float64{}) {
		cfg.AngleLimits = p.AngleLimits
	}
	if p.AngleStepsize != 0 {
		cfg.AngleStepsize = p.AngleStepsize
	}
	if p.Tolerance != 0 {
		cfg.Tolerance = p.Tolerance
	}

	return cfg
}
