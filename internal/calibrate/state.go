// Package calibrate drives the simulator toward a reference indel
// signature with a bounded ask/evaluate/tell loop.
package calibrate

import "math"

// Sentinel is the distance recorded for a failed simulation repeat. It is
// large enough to dominate any real distance while staying finite, so
// repeat means remain well-defined.
const Sentinel = 1e15

// State is the mutable state of one calibration run. It is owned by
// exactly one Evaluator and never shared across runs. Best only ever
// decreases; Rounds is diagnostic.
type State struct {
	// Best is the lowest single-repeat distance observed so far.
	Best float64
	// Rounds counts completed Evaluate calls.
	Rounds int
}

// NewState returns a fresh run state with Best at +Inf.
func NewState() *State {
	return &State{Best: math.Inf(1)}
}
