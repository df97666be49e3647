package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from the config file.
// Example:
//
//	bindings:
//	  p: true
//	  q: false
//	tree-output: tree.gv
type Config struct {
	// Bindings gives variables a value before any statement is read.
	// Assignments inside a statement override these.
	Bindings map[string]bool `yaml:"bindings"`

	// TreeOutput is where the parsed expression tree is written in graphviz
	// format. Empty disables the output.
	TreeOutput string `yaml:"tree-output"`
}

// Load reads the config file at path. A missing file is not an error, it just
// means all defaults apply.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// only affects log messages, not correctness. Best effort.
		absPath = path
	}

	file, err := os.Open(absPath)
	if os.IsNotExist(err) {
		slog.Debug("no config file found, using defaults", "path", absPath)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", absPath, err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}

	slog.Debug("loaded config", "path", absPath, "bindings", len(config.Bindings))
	return &config, nil
}
