package calibrate

import (
	"context"
	"fmt"
	"math"

	"github.com/seqgrove/calibration-core/internal/simulator"
	"github.com/seqgrove/calibration-core/pkg/logger"
)

// DefaultRounds is the standard round budget per calibration run.
const DefaultRounds = 100

// DefaultStopThreshold stops a run early once the best observed distance
// falls below it.
const DefaultStopThreshold = 0.01

// Result summarizes one finished calibration run.
type Result struct {
	// BestDistance is the lowest single-repeat distance seen; the matching
	// alignment sits at the evaluator's BestPath.
	BestDistance float64
	// BestParams is the candidate with the lowest round mean.
	BestParams simulator.Parameters
	// BestMean is that candidate's mean distance.
	BestMean float64
	// Rounds actually executed.
	Rounds int
	// Stopped reports why the loop ended.
	Stopped string
}

// Calibrator composes an Evaluator with a black-box Optimizer over a
// declared search space and runs the ask/evaluate/tell loop strictly
// sequentially, one candidate at a time.
type Calibrator struct {
	Evaluator *Evaluator
	Optimizer Optimizer
	// Rounds is the round budget; DefaultRounds when zero or negative.
	Rounds int
	// StopThreshold ends the run early once State.Best drops below it.
	// Zero disables early stopping.
	StopThreshold float64
}

// NewCalibrator builds a loop with the default budget and threshold.
func NewCalibrator(evaluator *Evaluator, optimizer Optimizer) *Calibrator {
	return &Calibrator{
		Evaluator:     evaluator,
		Optimizer:     optimizer,
		Rounds:        DefaultRounds,
		StopThreshold: DefaultStopThreshold,
	}
}

// Run executes up to the round budget and returns the run summary. The
// loop itself never fails on simulation errors; only a nil collaborator
// or cancelled context ends it with an error.
func (c *Calibrator) Run(ctx context.Context) (*Result, error) {
	if c.Evaluator == nil {
		return nil, fmt.Errorf("evaluator is required")
	}
	if c.Optimizer == nil {
		return nil, fmt.Errorf("optimizer is required")
	}

	rounds := c.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	result := &Result{BestMean: math.Inf(1), Stopped: "round budget exhausted"}
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			result.Stopped = "cancelled"
			result.BestDistance = c.Evaluator.State.Best
			result.Rounds = round
			return result, err
		}

		candidate := c.Optimizer.Ask()
		mean := c.Evaluator.Evaluate(ctx, candidate)
		c.Optimizer.Tell(candidate, mean)

		logger.Info("calibration round",
			"round", round,
			"mean_distance", mean,
			"best_distance", c.Evaluator.State.Best,
		)

		if mean < result.BestMean {
			result.BestMean = mean
			result.BestParams = candidate
		}
		result.Rounds = round + 1

		if c.StopThreshold > 0 && c.Evaluator.State.Best < c.StopThreshold {
			result.Stopped = "distance below threshold"
			break
		}
	}

	result.BestDistance = c.Evaluator.State.Best
	return result, nil
}
