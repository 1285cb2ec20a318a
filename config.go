// Package ppg is the front end of the ppg grammar-description language:
// a two-layer lexical scanner and a recursive-descent parser that turn
// grammar source text into an AST. The root package holds the project
// configuration shared by the CLI commands.
package ppg

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the ppg project configuration (ppg.yaml)
type Config struct {
	InputDir   string   `yaml:"input_dir"`
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns the configuration used when no ppg.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		InputDir:   ".",
		Extensions: []string{".ppg"},
	}
}

// LoadConfig loads the configuration from path. A missing file is not an
// error; it yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.InputDir == "" {
		config.InputDir = "."
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".ppg"}
	}

	return config, nil
}
