// Package config holds the tunable parameters of a session and their YAML file form
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gesture-lane/constant"
	"github.com/lixenwraith/gesture-lane/core"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the session and front-end configuration
type Config struct {
	AlphabetSize  int           `yaml:"alphabet_size"`
	SpawnInterval int           `yaml:"spawn_interval"`
	QueueDepth    int           `yaml:"queue_depth"`
	TickPeriod    time.Duration `yaml:"tick_period"`
	LifeMax       int           `yaml:"life_max"`

	// Seed for the spawn RNG, 0 picks a time-based seed at session start
	Seed uint64 `yaml:"seed"`

	// SamplePeriod is the polling cadence for pull-based symbol sources
	SamplePeriod time.Duration `yaml:"sample_period"`

	// InputHold decays a key press back to Neutral after this long, 0 keeps it until the next press
	InputHold time.Duration `yaml:"input_hold"`

	Audio  bool         `yaml:"audio"`
	Sensor SensorConfig `yaml:"sensor"`
	Keys   KeyConfig    `yaml:"keys"`
}

// KeyConfig overrides default key bindings, key name to action name per context
type KeyConfig struct {
	Menu map[string]string `yaml:"menu"`
	Play map[string]string `yaml:"play"`
}

// SensorConfig enables the remote wearable websocket ingress
type SensorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Default returns the constants of the original wearable front-end
func Default() Config {
	return Config{
		AlphabetSize:  constant.DefaultAlphabetSize,
		SpawnInterval: constant.DefaultSpawnInterval,
		QueueDepth:    constant.DefaultQueueDepth,
		TickPeriod:    constant.DefaultTickPeriod,
		LifeMax:       constant.LifeMax,
		SamplePeriod:  constant.DefaultSamplePeriod,
		Sensor: SensorConfig{
			Address: ":7777",
		},
	}
}

// Validate rejects configurations the engine cannot run
func (c Config) Validate() error {
	if c.AlphabetSize < core.MinAlphabetSize || c.AlphabetSize > core.MaxAlphabetSize {
		return fmt.Errorf("%w: alphabet_size %d out of range %d..%d", ErrInvalidConfig, c.AlphabetSize, core.MinAlphabetSize, core.MaxAlphabetSize)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn_interval must be positive, got %d", ErrInvalidConfig, c.SpawnInterval)
	}
	if c.QueueDepth <= 0 {
		return fmt.Errorf("%w: queue_depth must be positive, got %d", ErrInvalidConfig, c.QueueDepth)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: tick_period must be positive, got %s", ErrInvalidConfig, c.TickPeriod)
	}
	if c.LifeMax <= 0 {
		return fmt.Errorf("%w: life_max must be positive, got %d", ErrInvalidConfig, c.LifeMax)
	}
	if c.SamplePeriod < 0 {
		return fmt.Errorf("%w: sample_period must not be negative", ErrInvalidConfig)
	}
	if c.InputHold < 0 {
		return fmt.Errorf("%w: input_hold must not be negative", ErrInvalidConfig)
	}
	if c.Sensor.Enabled && c.Sensor.Address == "" {
		return fmt.Errorf("%w: sensor.address required when sensor is enabled", ErrInvalidConfig)
	}
	return nil
}

// Alphabet returns the symbol set for AlphabetSize
func (c Config) Alphabet() (core.Alphabet, error) {
	return core.NewAlphabet(c.AlphabetSize)
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, Default())
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto base and validates
// Unknown keys are rejected
func Decode(r io.Reader, base Config) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := base
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
