// Package config loads the engine's small set of tunables from an
// optional YAML file, applying documented defaults when one isn't
// supplied.
package config

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables the engine and its CLI drivers consult.
// Every field has a sensible default; a config file only needs to
// override what it wants to change.
type Config struct {
	// EdgeCost is the fixed cost charged per reversal. Default 1.
	EdgeCost int `yaml:"edge_cost"`
	// TranspositionCapacity bounds the IDA* transposition table.
	// Default search.DefaultTranspositionCapacity.
	TranspositionCapacity int `yaml:"transposition_capacity"`
	// LogLevel is one of zerolog's level names ("debug", "info",
	// "warn", "error", "disabled"). Default "disabled".
	LogLevel string `yaml:"log_level"`
}

// Default returns the engine's built-in tunables.
func Default() Config {
	return Config{
		EdgeCost:              1,
		TranspositionCapacity: 0, // 0 selects search.DefaultTranspositionCapacity
		LogLevel:              "disabled",
	}
}

// Load reads a YAML config file at path and overlays it on Default().
// A missing file is not an error; the caller gets plain defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel into a zerolog.Level, falling back to
// zerolog.Disabled for an empty or unrecognized value.
func (c Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled
	}
	return lvl
}
