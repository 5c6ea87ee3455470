package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a Config from YAML bytes and validates it. Validation
// failures are fatal; they are reported before any simulation starts.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ParseYAMLString parses a Config from a YAML string and validates it.
func ParseYAMLString(yamlText string) (*Config, error) {
	return ParseYAML([]byte(yamlText))
}
