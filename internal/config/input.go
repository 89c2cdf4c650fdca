// Package config loads scenario-input and regulatory-table YAML files from
// disk, following the teacher's internal/config/input.go pattern: read the
// file, unmarshal, and hand back a ready-to-resolve value. No validation
// runs at load time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/fersproj/internal/domain"
	"github.com/rgehrsitz/fersproj/internal/registry"
)

// InputParser loads SimulationInput scenario files and regulatory.yaml
// registry configs.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadScenario loads a SimulationInput from a YAML (or JSON, since JSON is
// a YAML subset) scenario file.
func (p *InputParser) LoadScenario(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", filename, err)
	}

	var in domain.SimulationInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	return &in, nil
}

// LoadRegulatoryConfig loads a registry.Registry from a regulatory.yaml
// document shaped like registry.Config.
func (p *InputParser) LoadRegulatoryConfig(filename string) (*registry.Registry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory config %s: %w", filename, err)
	}

	reg, err := registry.LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regulatory config: %w", err)
	}
	return reg, nil
}
