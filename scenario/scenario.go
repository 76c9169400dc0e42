// Package scenario replays scripted sessions headlessly
// A scenario pins the spawn draws and the observed input per tick so a run is reproducible
// and its trace can be compared against a golden file
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gesture-lane/config"
	"github.com/lixenwraith/gesture-lane/core"
)

// ErrInvalidScenario wraps every scenario validation failure
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a parsed, validated scenario file
type Scenario struct {
	Name string

	// Ticks is the upper bound on steps; the run stops earlier on game over
	Ticks int

	// Config is the defaults overlaid with the file's config section and seed
	Config config.Config

	// Spawns are alphabet indices returned by successive spawn draws
	// Once exhausted, draws fall back to the seeded RNG
	Spawns []int

	// Input[t] is stored into the input channel before tick t
	// Ticks past the end keep the last stored value
	Input []core.Symbol
}

// file is the on-disk form
type file struct {
	Name   string        `yaml:"name"`
	Seed   uint64        `yaml:"seed"`
	Ticks  int           `yaml:"ticks"`
	Config yaml.Node     `yaml:"config"`
	Spawns []int         `yaml:"spawns"`
	Input  []core.Symbol `yaml:"input"`
}

// Load reads and parses a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates scenario YAML
// Unknown keys are rejected at both the scenario and config level
func Parse(data []byte) (*Scenario, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	cfg := config.Default()
	if f.Config.Kind != 0 {
		raw, err := yaml.Marshal(&f.Config)
		if err != nil {
			return nil, fmt.Errorf("config section: %w", err)
		}
		cfg, err = config.Decode(bytes.NewReader(raw), cfg)
		if err != nil {
			return nil, fmt.Errorf("config section: %w", err)
		}
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}

	sc := &Scenario{
		Name:   f.Name,
		Ticks:  f.Ticks,
		Config: cfg,
		Spawns: f.Spawns,
		Input:  f.Input,
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks the scenario against its own config
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidScenario)
	}
	if sc.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidScenario, sc.Ticks)
	}
	if err := sc.Config.Validate(); err != nil {
		return err
	}
	for i, idx := range sc.Spawns {
		if idx < 0 || idx >= sc.Config.AlphabetSize {
			return fmt.Errorf("%w: spawns[%d] = %d outside alphabet of size %d", ErrInvalidScenario, i, idx, sc.Config.AlphabetSize)
		}
	}
	return nil
}
