// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	SkillsDir string `json:"skills_dir,omitempty"` // Directory holding the skill record set
	IndexFile string `json:"index_file,omitempty"` // Index document name inside the skills dir

	// Matching
	MatchThreshold float64 `json:"match_threshold,omitempty"` // Minimum adjusted score to report a match (0.0-1.0)
	RelatedLimit   int     `json:"related_limit,omitempty"`   // Maximum related skills returned

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("config error: 'match_threshold' must be in [0,1]")
	}
	if c.RelatedLimit < 0 {
		return fmt.Errorf("config error: 'related_limit' must be non-negative")
	}

	if c.SkillsDir != "" {
		if _, err := os.Stat(c.SkillsDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills directory not found: %s", c.SkillsDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SkillsDir == "" {
		result.SkillsDir = defaults.SkillsDir
	}
	if result.IndexFile == "" {
		result.IndexFile = defaults.IndexFile
	}
	if result.RelatedLimit == 0 {
		result.RelatedLimit = defaults.RelatedLimit
	}

	if result.MatchThreshold == 0 {
		if defaults.MatchThreshold > 0 {
			result.MatchThreshold = defaults.MatchThreshold
		} else {
			result.MatchThreshold = 0.5 // Default to the standard match cutoff
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
