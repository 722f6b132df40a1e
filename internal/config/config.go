// Package config loads the host-side resource limits and REPL prompt
// text that sit outside the interpreter CORE: the engine itself never
// reads a file or an environment variable.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Limits bounds interpreter resource usage and carries the
// interactive prompt string. Every field has a sensible default, so
// the zero-value-via-Load(""), i.e. no config file, is already usable.
type Limits struct {
	MaxOperandStackDepth    int    `yaml:"maxOperandStackDepth"`
	MaxDictionaryStackDepth int    `yaml:"maxDictionaryStackDepth"`
	MaxOps                  int64  `yaml:"maxOps"`
	Prompt                  string `yaml:"prompt"`
}

// Default returns the documented out-of-the-box limits.
func Default() Limits {
	return Limits{
		MaxOperandStackDepth:    500,
		MaxDictionaryStackDepth: 20,
		MaxOps:                  10_000_000,
		Prompt:                  "csgx> ",
	}
}

// Load reads Limits from a YAML file at path, starting from Default()
// so any key the file omits keeps its built-in value. An empty path
// returns Default() unchanged.
func Load(path string) (Limits, error) {
	limits := Default()
	if path == "" {
		return limits, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return limits, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return limits, fmt.Errorf("config: %w", err)
	}
	return limits, nil
}
