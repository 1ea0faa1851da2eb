// Package config loads the optional parse-schema.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds defaults that positional arguments and flags
// override.
type ProjectConfig struct {
	// Output is the default output root directory name.
	Output string `yaml:"output"`

	// Verbose enables verbose logging by default.
	Verbose bool `yaml:"verbose"`

	// Progress controls the export progress bar. Nil means enabled.
	Progress *bool `yaml:"progress,omitempty"`
}

// ConfigFileName is the project config filename looked up in the
// working directory.
const ConfigFileName = "parse-schema.yaml"

// Load reads the project config from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
