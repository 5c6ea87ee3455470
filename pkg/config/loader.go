package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if err := validateReference(&cfg.Reference, cfg.Calibration.Preset); err != nil {
		return fmt.Errorf("reference validation failed: %w", err)
	}
	if err := validateSimulator(&cfg.Simulator); err != nil {
		return fmt.Errorf("simulator validation failed: %w", err)
	}
	if err := validateCalibration(&cfg.Calibration); err != nil {
		return fmt.Errorf("calibration validation failed: %w", err)
	}

	if cfg.Output.BestAlignment == "" {
		return fmt.Errorf("output best_alignment path cannot be empty")
	}

	return nil
}

// validateReference validates the reference data section
func validateReference(r *Reference, preset string) error {
	if r.TreePath == "" {
		return fmt.Errorf("tree path cannot be empty")
	}
	if r.Model == "" {
		return fmt.Errorf("substitution model cannot be empty")
	}

	hasAlignment := r.AlignmentPath != ""
	hasSummary := r.AlignmentSites > 0 || r.Patterns > 0

	if hasAlignment && hasSummary {
		return fmt.Errorf("alignment and stored summary statistics are mutually exclusive")
	}
	if !hasAlignment && !hasSummary {
		return fmt.Errorf("either an alignment or stored summary statistics are required")
	}
	if hasSummary && preset != "blind" {
		return fmt.Errorf("stored summary statistics require the blind preset")
	}
	if hasSummary {
		if r.AlignmentSites <= 0 {
			return fmt.Errorf("alignment_sites must be positive, got %d", r.AlignmentSites)
		}
		if r.Patterns <= 0 {
			return fmt.Errorf("patterns must be positive, got %d", r.Patterns)
		}
		if r.GapProportion < 0 || r.GapProportion > 1 {
			return fmt.Errorf("gap_proportion must be between 0 and 1, got %f", r.GapProportion)
		}
	}
	return nil
}

// validateSimulator validates the simulator section
func validateSimulator(s *SimulatorConfig) error {
	if s.Binary == "" {
		return fmt.Errorf("simulator binary path cannot be empty")
	}
	if _, err := s.GetTimeout(); err != nil {
		return fmt.Errorf("invalid timeout %s: %w", s.Timeout, err)
	}
	return nil
}

// validateCalibration validates the calibration section
func validateCalibration(c *CalibrationConfig) error {
	validPresets := map[string]bool{
		"blind":    true,
		"extended": true,
	}
	if !validPresets[c.Preset] {
		return fmt.Errorf("invalid preset: %s (must be blind or extended)", c.Preset)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("rounds cannot be negative, got %d", c.Rounds)
	}
	if c.Repeats < 0 {
		return fmt.Errorf("repeats cannot be negative, got %d", c.Repeats)
	}
	if c.StopThreshold < 0 {
		return fmt.Errorf("stop_threshold cannot be negative, got %f", c.StopThreshold)
	}
	for i, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("weight %d cannot be negative, got %f", i, w)
		}
	}
	return nil
}
