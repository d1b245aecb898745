package synth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads a YAML preset. Missing fields keep their defaults.
func LoadPreset(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func SavePreset(path string, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
