package pairing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScenario reads a YAML scenario file:
//
//	name: evening-batch
//	resources: 3
//	tasks:
//	  - id: 0
//	    start: "08:00"
//	    duration: 120
//
// A scenario without tasks is ErrEmptyScenario; read and YAML errors are
// wrapped with the file path for context.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pairing: read scenario %q: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("pairing: parse scenario %q: %w", path, err)
	}
	if len(sc.Tasks) == 0 {
		return nil, ErrEmptyScenario
	}

	return &sc, nil
}
