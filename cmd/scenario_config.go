package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abtest-sim/abtest-sim/abtest"
)

// ScenarioGroup describes one arm's generating distributions in scenarios.yaml.
type ScenarioGroup struct {
	PreMean       float64 `yaml:"pre_mean"`
	PreStd        float64 `yaml:"pre_std"`
	IncrementMean float64 `yaml:"increment_mean"`
	IncrementStd  float64 `yaml:"increment_std"`
}

// Scenario describes a preset experiment configuration in scenarios.yaml.
type Scenario struct {
	N       int           `yaml:"n"`
	Control ScenarioGroup `yaml:"control"`
	Test    ScenarioGroup `yaml:"test"`
}

// ScenariosFile represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenariosFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenarios reads and strictly parses a scenario presets file.
func LoadScenarios(path string) (*ScenariosFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}

	// Parse YAML with strict field checking so typos cause errors
	var file ScenariosFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse scenarios file %s: %w", path, err)
	}
	return &file, nil
}

// GetScenario resolves a named preset into a SimConfig.
func GetScenario(path, name string) (abtest.SimConfig, error) {
	file, err := LoadScenarios(path)
	if err != nil {
		return abtest.SimConfig{}, err
	}

	preset, ok := file.Scenarios[name]
	if !ok {
		return abtest.SimConfig{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return abtest.NewSimConfig(
		preset.N,
		abtest.NewGroupParams(preset.Control.PreMean, preset.Control.PreStd, preset.Control.IncrementMean, preset.Control.IncrementStd),
		abtest.NewGroupParams(preset.Test.PreMean, preset.Test.PreStd, preset.Test.IncrementMean, preset.Test.IncrementStd),
	), nil
}
