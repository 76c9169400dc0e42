package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.AlphabetSize)
	assert.Equal(t, 12, cfg.SpawnInterval)
	assert.Equal(t, 40, cfg.QueueDepth)
	assert.Equal(t, 100*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 10, cfg.LifeMax)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero depth", func(c *Config) { c.QueueDepth = 0 }},
		{"negative depth", func(c *Config) { c.QueueDepth = -3 }},
		{"zero interval", func(c *Config) { c.SpawnInterval = 0 }},
		{"zero tick", func(c *Config) { c.TickPeriod = 0 }},
		{"zero life", func(c *Config) { c.LifeMax = 0 }},
		{"alphabet too small", func(c *Config) { c.AlphabetSize = 1 }},
		{"alphabet too large", func(c *Config) { c.AlphabetSize = 6 }},
		{"negative hold", func(c *Config) { c.InputHold = -time.Second }},
		{"sensor without address", func(c *Config) { c.Sensor = SensorConfig{Enabled: true} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	src := `
alphabet_size: 3
queue_depth: 20
tick_period: 250ms
seed: 42
sensor:
  enabled: true
`
	cfg, err := Decode(strings.NewReader(src), Default())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.AlphabetSize)
	assert.Equal(t, 20, cfg.QueueDepth)
	assert.Equal(t, 250*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Sensor.Enabled)
	assert.Equal(t, ":7777", cfg.Sensor.Address, "unset nested key keeps default")
	assert.Equal(t, 12, cfg.SpawnInterval, "unset key keeps default")
}

func TestDecodeRejectsUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("queue_dept: 3\n"), Default())
	require.Error(t, err)
}

func TestDecodeValidates(t *testing.T) {
	_, err := Decode(strings.NewReader("spawn_interval: 0\n"), Default())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader("  \n"), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lane.yaml")
	require.NoError(t, os.WriteFile(path, []byte("life_max: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LifeMax)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeKeys(t *testing.T) {
	src := `
keys:
  play:
    w: a
    Up: none
`
	cfg, err := Decode(strings.NewReader(src), Default())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"w": "a", "Up": "none"}, cfg.Keys.Play)
	assert.Nil(t, cfg.Keys.Menu)
}
