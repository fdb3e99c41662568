package director

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteScenario marshals a scenario to a YAML file.
func WriteScenario(scenario *Scenario, path string) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario %s: %w", path, err)
	}
	return nil
}

// ReadScenario loads a scenario from a YAML file.
func ReadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &scenario, nil
}
