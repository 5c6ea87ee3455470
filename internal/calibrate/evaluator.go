package calibrate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/seqgrove/calibration-core/internal/distance"
	"github.com/seqgrove/calibration-core/internal/features"
	"github.com/seqgrove/calibration-core/internal/simulator"
	"github.com/seqgrove/calibration-core/pkg/logger"
	"github.com/seqgrove/calibration-core/pkg/msa"
	"github.com/seqgrove/calibration-core/pkg/utils"
)

// DefaultRepeats is the number of simulations averaged per candidate point.
const DefaultRepeats = 5

// Evaluator is the single-point noisy objective. One Evaluate call runs
// the simulator Repeats times against the same candidate parameters and
// returns the mean distance to the reference signature. Failed repeats
// degrade to Sentinel and never propagate as errors.
type Evaluator struct {
	Adapter   simulator.Adapter
	Metric    distance.Metric
	Weights   []float64
	Reference *features.Vector

	// TreePath is the fixed tree topology driving every simulation.
	TreePath string
	// ScratchPath receives each repeat's simulated alignment and is
	// overwritten every repeat.
	ScratchPath string
	// BestPath is the caller-known location of the best alignment found
	// across the whole run, updated in place.
	BestPath string

	// Repeats per candidate; DefaultRepeats when zero or negative.
	Repeats int
	// Mask optionally blanks sequences absent from the reference data
	// before feature extraction (ID -> present).
	Mask map[string]bool

	State *State
}

// NewEvaluator wires an evaluator around a fresh run state.
func NewEvaluator(adapter simulator.Adapter, metric distance.Metric, reference *features.Vector, treePath, scratchPath, bestPath string) *Evaluator {
	return &Evaluator{
		Adapter:     adapter,
		Metric:      metric,
		Reference:   reference,
		TreePath:    treePath,
		ScratchPath: scratchPath,
		BestPath:    bestPath,
		Repeats:     DefaultRepeats,
		State:       NewState(),
	}
}

// Evaluate scores one candidate point. The returned mean includes the
// Sentinel for failed repeats and may move non-monotonically between
// calls; State.Best only ever decreases.
func (e *Evaluator) Evaluate(ctx context.Context, params simulator.Parameters) float64 {
	repeats := e.Repeats
	if repeats <= 0 {
		repeats = DefaultRepeats
	}

	logger.Debug("evaluating candidate", "round", e.State.Rounds, "params", fmt.Sprintf("%+v", params))

	dists := make([]float64, 0, repeats)
	for i := 0; i < repeats; i++ {
		d := e.evaluateOnce(ctx, params)
		dists = append(dists, d)
	}
	e.State.Rounds++

	return utils.Mean(dists)
}

// evaluateOnce runs a single repeat: simulate, extract, score, and claim
// an improvement before the next simulation may overwrite the scratch.
func (e *Evaluator) evaluateOnce(ctx context.Context, params simulator.Parameters) float64 {
	if err := e.Adapter.Execute(ctx, e.TreePath, e.ScratchPath, params); err != nil {
		logger.Debug("simulation failed", "error", err)
		return Sentinel
	}

	candidate, err := msa.ReadFastaFile(e.ScratchPath)
	if err != nil {
		// Corrupted simulator output is handled like a failed simulation.
		logger.Debug("discarding malformed simulator output", "error", err)
		return Sentinel
	}
	if len(e.Mask) > 0 {
		candidate = candidate.MaskSequences(e.Mask)
	}

	d := e.Metric.Distance(e.Reference, e.Metric.Features(candidate), e.Weights)

	if d < e.State.Best {
		e.State.Best = d
		// The snapshot must land before the next repeat, or the improved
		// alignment is lost to the scratch overwrite.
		if err := copyFile(e.ScratchPath, e.BestPath); err != nil {
			logger.Warn("failed to snapshot best alignment", "error", err)
		} else {
			logger.Info("new best distance", "distance", d)
		}
	}
	return d
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
