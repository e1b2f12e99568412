// Package config loads translator settings from an optional yaml file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = ".conceptc.yaml"

// Config holds the settings shared by the CLI commands. Flags override any
// value loaded from file.
type Config struct {
	// Indent is the indent width, in spaces, of generated output.
	Indent int `yaml:"indent"`

	// Tabs switches generated output to tab indentation.
	Tabs bool `yaml:"tabs"`

	// Debug enables parser trace output on stderr.
	Debug bool `yaml:"debug"`

	// StrictBrackets makes the scanner reject a closing bracket whose type
	// does not match the bracket it closes.
	StrictBrackets bool `yaml:"strictBrackets"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Indent: 2}
}

// Load reads the config file at path, falling back to defaults if the file
// does not exist. An unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Indent <= 0 {
		cfg.Indent = Default().Indent
	}
	return cfg, nil
}
