// Package simulator defines the stochastic sequence simulator interface
// and an adapter for the AliSim simulator shipped with IQ-TREE 2.
package simulator

import (
	"context"
)

// Parameters is one candidate point in the calibration search space.
type Parameters struct {
	// RootLength is the target (root) sequence length.
	RootLength int
	// InsertionRate and DeletionRate are the per-site indel rates.
	InsertionRate float64
	DeletionRate  float64
	// InsertionAlpha and DeletionAlpha are the power-law shape parameters
	// of the indel size distributions.
	InsertionAlpha float64
	DeletionAlpha  float64
}

// Adapter runs the simulator once. On success a new alignment file is
// written to outPath. Implementations must return deterministically once
// the context expires and must not hang the caller.
type Adapter interface {
	Execute(ctx context.Context, treePath, outPath string, params Parameters) error
}

// Error reports a failed or timed-out simulator invocation.
type Error struct {
	Op       string
	TimedOut bool
	Err      error
}

func (e *Error) Error() string {
	msg := "simulation failed"
	if e.TimedOut {
		msg = "simulation timed out"
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
