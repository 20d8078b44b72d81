// Package config loads generator settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = ".doxygenrc.yaml"

// Config holds settings that can come from a config file. Command-line
// flags override anything read here.
type Config struct {
	EnhanceExisting bool     `yaml:"enhance_existing"`
	Recursive       bool     `yaml:"recursive"`
	DryRun          bool     `yaml:"dry_run"`
	OutputDir       string   `yaml:"output_dir"`
	Exclude         []string `yaml:"exclude"`
	JSON            bool     `yaml:"json"`
	Verbose         bool     `yaml:"verbose"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{Recursive: true}
}

// Load reads the config file at path. An empty path looks for
// DefaultFileName in the working directory; a missing default file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(".", DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
