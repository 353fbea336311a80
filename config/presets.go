package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"membrane-calculator/domain"
)

// PresetFile is the layout of the YAML file passed through MEMBRANE_PRESETS_FILE.
//
//	presets:
//	  - name: lager
//	    parameters:
//	      area: 12000
//	      energy_type: natural_gas
//
// Parameters omitted from a preset keep the calculator defaults.
type PresetFile struct {
	Presets []domain.Preset `yaml:"presets"`
}

// LoadPresets reads presets from a YAML file.
func LoadPresets(filename string) ([]domain.Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) ([]domain.Preset, error) {
	var raw struct {
		Presets []yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	presets := make([]domain.Preset, 0, len(raw.Presets))
	seen := make(map[string]bool)
	for i, node := range raw.Presets {
		preset := domain.Preset{Parameters: domain.DefaultParameters()}
		if err := node.Decode(&preset); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i, err)
		}
		if preset.Name == "" {
			return nil, fmt.Errorf("preset %d: name is required", i)
		}
		if seen[preset.Name] {
			return nil, fmt.Errorf("duplicate preset name: %s", preset.Name)
		}
		seen[preset.Name] = true
		presets = append(presets, preset)
	}

	return presets, nil
}

// SavePresets writes presets in the format LoadPresets reads.
func SavePresets(presets []domain.Preset, filename string) error {
	data, err := yaml.Marshal(PresetFile{Presets: presets})
	if err != nil {
		return err
	}

	header := []byte("# Membrane calculator presets\n# Parameters left out fall back to the calculator defaults.\n\n")
	return os.WriteFile(filename, append(header, data...), 0o644)
}
