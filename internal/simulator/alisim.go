package simulator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// DefaultTimeout bounds one simulator invocation. Exceeding it fails that
// invocation only; the calling loop is expected to continue.
const DefaultTimeout = 20 * time.Second

// indelSizeTruncation caps the power-law indel size distributions.
const indelSizeTruncation = 500

// AliSim invokes the AliSim simulator (part of IQ-TREE 2) as an external
// process. It is stateless across invocations aside from the seed.
type AliSim struct {
	// BinaryPath is the iqtree2 executable.
	BinaryPath string
	// ModelString is the fixed substitution model of the reference data,
	// e.g. "GTR{...}+F{...}+G{0.5}".
	ModelString string
	// Timeout per invocation; DefaultTimeout when zero.
	Timeout time.Duration
	// Seed for the simulator RNG; 0 leaves seeding to the simulator.
	Seed int64
}

// NewAliSim creates an adapter for the given binary and substitution model.
func NewAliSim(binaryPath, modelString string) *AliSim {
	return &AliSim{
		BinaryPath:  binaryPath,
		ModelString: modelString,
		Timeout:     DefaultTimeout,
	}
}

// Args builds the command line for one invocation.
func (s *AliSim) Args(treePath, outPath string, params Parameters) []string {
	args := []string{
		"--alisim", outPath,
		"-m", s.ModelString,
		"-t", treePath,
		"--length", fmt.Sprintf("%d", params.RootLength),
		"-af", "fasta",
		"--no-export-sequence-wo-gaps",
		"--indel", fmt.Sprintf("%g,%g", params.InsertionRate, params.DeletionRate),
		"--indel-size", fmt.Sprintf("POW{%g/%d},POW{%g/%d}",
			params.InsertionAlpha, indelSizeTruncation,
			params.DeletionAlpha, indelSizeTruncation),
	}
	if s.Seed != 0 {
		args = append(args, "--seed", fmt.Sprintf("%d", s.Seed))
	}
	return args
}

// Execute runs the simulator and renames its output to outPath. Timeouts
// and crashes are reported as *Error with TimedOut set accordingly.
func (s *AliSim) Execute(ctx context.Context, treePath, outPath string, params Parameters) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.BinaryPath, s.Args(treePath, outPath, params)...)
	if err := cmd.Run(); err != nil {
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		return &Error{Op: "alisim", TimedOut: timedOut, Err: err}
	}

	// AliSim appends an extension of its own.
	written := outPath + ".fa"
	if _, err := os.Stat(written); err != nil {
		return &Error{Op: "alisim", Err: fmt.Errorf("no output written: %w", err)}
	}
	if err := os.Rename(written, outPath); err != nil {
		return &Error{Op: "alisim", Err: err}
	}
	return nil
}
