package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/bankers-sim/sim"
)

// Scenario is the top-level scenario file: a process table, the available
// vector and an optional list of requests replayed by `run`.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Available sim.ResourceVector `yaml:"available"`
	Processes []sim.Process      `yaml:"processes"`
	Requests  []RequestStep      `yaml:"requests,omitempty"`
}

// RequestStep is one resource request. Process is an id or a display name.
type RequestStep struct {
	Process   string             `yaml:"process"`
	Resources sim.ResourceVector `yaml:"resources"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field checking and validates it.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the structure of the scenario. Vector lengths and values
// are checked by the engine when the scenario is applied.
func (s *Scenario) Validate() error {
	if len(s.Available) == 0 {
		return fmt.Errorf("available must list at least one resource category")
	}
	for i, p := range s.Processes {
		if p.Needs == nil {
			return fmt.Errorf("processes[%d]: needs is required", i)
		}
		if p.Allocations == nil {
			return fmt.Errorf("processes[%d]: allocations is required", i)
		}
	}
	for i, r := range s.Requests {
		if r.Process == "" {
			return fmt.Errorf("requests[%d]: process is required", i)
		}
		if r.Resources == nil {
			return fmt.Errorf("requests[%d]: resources is required", i)
		}
	}
	return nil
}

// Apply configures the engine with the scenario's state.
func (s *Scenario) Apply(e *sim.Engine) error {
	if _, err := e.Configure(s.Processes, s.Available); err != nil {
		return fmt.Errorf("applying scenario: %w", err)
	}
	return nil
}
