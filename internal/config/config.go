package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats of the theurgist report.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalidOutput is returned for an output format other than text or yaml.
var ErrInvalidOutput = errors.New("invalid output format")

// Theurgist holds configuration of the theurgist CLI.
type Theurgist struct {
	LogLevel string `yaml:"log_level"`

	// DataDir overrides the embedded tables when set.
	DataDir string `yaml:"data_dir"`

	Output string `yaml:"output"` // text | yaml
}

// DefaultTheurgist returns Theurgist config with sensible defaults.
func DefaultTheurgist() Theurgist {
	return Theurgist{
		LogLevel: "warn",
		Output:   OutputText,
	}
}

// LoadTheurgist loads CLI config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTheurgist(path string) (Theurgist, error) {
	cfg := DefaultTheurgist()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values yaml decoding cannot.
func (c Theurgist) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q, expected %s or %s", ErrInvalidOutput, c.Output, OutputText, OutputYAML)
	}
}
