/*
PURPOSE:
  Defines the configuration structure and loading logic for searchbench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of dataset source, generation parameters and
    benchmark targets.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Defaults must mirror the classic study setup (1M elements drawn
    from [1, 10M]).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/bench
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default file falls back to defaults silently.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible for a quick first run.

USAGE:
  cfg, err := config.Load("searchbench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for searchbench.
type Config struct {
	// DatasetFile, when set, loads the dataset from disk instead of
	// generating one.
	DatasetFile string `yaml:"dataset_file"`

	// Generation parameters (ignored when DatasetFile is set).
	GenerateSize int `yaml:"generate_size"`
	GenerateMin  int `yaml:"generate_min"`
	GenerateMax  int `yaml:"generate_max"`
	// Seed makes generation and target sampling reproducible. 0 means
	// time-based.
	Seed uint64 `yaml:"seed"`

	// Targets are searched verbatim when non-empty. Otherwise
	// TargetCount hits are sampled from the dataset and MissTargets
	// guaranteed misses are added just outside its value range.
	Targets     []int `yaml:"targets"`
	TargetCount int   `yaml:"target_count"`
	MissTargets int   `yaml:"miss_targets"`

	OutputDir  string `yaml:"output_dir"`
	OutputFile string `yaml:"output_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		GenerateSize: 1000000,
		GenerateMin:  1,
		GenerateMax:  10000000,
		TargetCount:  10,
		MissTargets:  2,
		OutputDir:    ".",
		OutputFile:   "search_results.csv",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"searchbench.yaml", "searchbench.yml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
