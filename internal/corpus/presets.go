package corpus

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Preset is one named pattern entry in a presets file, e.g.:
//
//	- name: ipv4
//	  pattern: "..."
//	  description: "dotted-quad address"
type Preset struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
}

// LoadPresets reads a YAML file of Preset entries.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading presets: %w", err)
	}
	var presets []Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("corpus: parsing presets: %w", err)
	}
	return presets, nil
}

// FindPreset returns the preset with the given name, or false if none
// matches.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
