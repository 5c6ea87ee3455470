package config

import "time"

// Config is the full configuration of one calibration run.
type Config struct {
	LogLevel    string            `yaml:"log_level"`
	Reference   Reference         `yaml:"reference"`
	Simulator   SimulatorConfig   `yaml:"simulator"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Output      OutputConfig      `yaml:"output"`
}

// Reference describes the reference data whose indel signature is the
// calibration target.
type Reference struct {
	// AlignmentPath is the reference MSA in FASTA format. Optional for
	// the blind preset when the summary statistics below are given.
	AlignmentPath string `yaml:"alignment"`
	// TreePath is the tree topology driving every simulation.
	TreePath string `yaml:"tree"`
	// Model is the substitution model string passed to the simulator,
	// e.g. "GTR{1.0/2.0/1.0/1.0/2.0}+G{0.5}".
	Model string `yaml:"model"`

	// Stored summary statistics, used by the blind preset instead of a
	// reference alignment.
	AlignmentSites int     `yaml:"alignment_sites,omitempty"`
	Patterns       int     `yaml:"patterns,omitempty"`
	GapProportion  float64 `yaml:"gap_proportion,omitempty"`

	// AbsentSequences lists sequence IDs to blank out before feature
	// extraction (partitions with missing data).
	AbsentSequences []string `yaml:"absent_sequences,omitempty"`
}

// SimulatorConfig selects and bounds the external simulator.
type SimulatorConfig struct {
	Binary  string `yaml:"binary"`
	Timeout string `yaml:"timeout,omitempty"` // e.g. "20s"
	Seed    int64  `yaml:"seed,omitempty"`
}

// CalibrationConfig configures the optimization loop.
type CalibrationConfig struct {
	Preset        string    `yaml:"preset"` // blind or extended
	Rounds        int       `yaml:"rounds,omitempty"`
	Repeats       int       `yaml:"repeats,omitempty"`
	StopThreshold float64   `yaml:"stop_threshold,omitempty"`
	Weights       []float64 `yaml:"weights,omitempty"`
	Seed          int64     `yaml:"seed,omitempty"`
}

// OutputConfig names the produced files.
type OutputConfig struct {
	// BestAlignment is the fixed path of the best-found alignment,
	// updated in place whenever a new best is found.
	BestAlignment string `yaml:"best_alignment"`
	// ScratchDir holds per-repeat simulator output.
	ScratchDir string `yaml:"scratch_dir,omitempty"`
}

// GetTimeout parses the simulator timeout string to time.Duration.
func (s *SimulatorConfig) GetTimeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}
