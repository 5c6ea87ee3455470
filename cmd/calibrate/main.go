package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/seqgrove/calibration-core/internal/calibrate"
	"github.com/seqgrove/calibration-core/internal/features"
	"github.com/seqgrove/calibration-core/internal/simulator"
	"github.com/seqgrove/calibration-core/pkg/config"
	"github.com/seqgrove/calibration-core/pkg/logger"
	"github.com/seqgrove/calibration-core/pkg/models"
	"github.com/seqgrove/calibration-core/pkg/msa"
	"github.com/seqgrove/calibration-core/pkg/utils"
)

func main() {
	var configPath string
	var logLevel string
	var seed int64

	flag.StringVar(&configPath, "config", "calibrate.yaml", "path to the run configuration file")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Int64Var(&seed, "seed", 0, "optimizer seed override")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath, logLevel, seed); err != nil {
		logger.Error("calibration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, logLevel string, seedOverride int64) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger.SetDefault(logger.NewText(logLevel, os.Stdout))

	preset, err := calibrate.PresetByName(cfg.Calibration.Preset)
	if err != nil {
		return err
	}
	if cfg.Calibration.Rounds > 0 {
		preset.Rounds = cfg.Calibration.Rounds
	}
	if cfg.Calibration.Repeats > 0 {
		preset.Repeats = cfg.Calibration.Repeats
	}
	if len(cfg.Calibration.Weights) > 0 {
		preset.Weights = cfg.Calibration.Weights
	}
	if err := preset.Validate(); err != nil {
		return err
	}

	reference, referenceLength, err := buildReference(cfg, preset)
	if err != nil {
		return err
	}

	adapter := simulator.NewAliSim(cfg.Simulator.Binary, cfg.Reference.Model)
	if timeout, _ := cfg.Simulator.GetTimeout(); timeout > 0 {
		adapter.Timeout = timeout
	}
	adapter.Seed = cfg.Simulator.Seed

	scratchDir := cfg.Output.ScratchDir
	if scratchDir == "" {
		scratchDir = filepath.Join(os.TempDir(), utils.GenerateRunID())
	}
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return fmt.Errorf("failed to create scratch dir %s: %w", scratchDir, err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output.BestAlignment), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	evaluator := calibrate.NewEvaluator(
		adapter,
		preset.Metric,
		reference,
		cfg.Reference.TreePath,
		filepath.Join(scratchDir, "sim_scratch.fasta"),
		cfg.Output.BestAlignment,
	)
	evaluator.Weights = preset.Weights
	evaluator.Repeats = preset.Repeats
	if len(cfg.Reference.AbsentSequences) > 0 {
		mask := make(map[string]bool, len(cfg.Reference.AbsentSequences))
		for _, id := range cfg.Reference.AbsentSequences {
			mask[id] = false
		}
		evaluator.Mask = mask
	}

	seed := cfg.Calibration.Seed
	if seedOverride != 0 {
		seed = seedOverride
	}
	space := calibrate.DefaultSearchSpace(referenceLength, preset.RootLengthSpan)
	if err := space.Validate(); err != nil {
		return err
	}
	optimizer := calibrate.NewRandomSearch(space, seed, 0)

	loop := calibrate.NewCalibrator(evaluator, optimizer)
	loop.Rounds = preset.Rounds
	if cfg.Calibration.StopThreshold > 0 {
		loop.StopThreshold = cfg.Calibration.StopThreshold
	}

	runID := utils.GenerateRunID()
	logger.Info("starting calibration",
		"run_id", runID,
		"preset", preset.Name,
		"rounds", preset.Rounds,
		"repeats", preset.Repeats,
	)

	start := time.Now()
	result, runErr := loop.Run(ctx)
	if result != nil {
		if err := writeSummary(cfg, preset.Name, runID, seed, start, result); err != nil {
			logger.Warn("failed to write run summary", "error", err)
		}
		logger.Info("calibration finished",
			"best_distance", result.BestDistance,
			"rounds", result.Rounds,
			"stopped", result.Stopped,
		)
	}
	return runErr
}

// buildReference extracts the target feature vector and the reference
// alignment length the search space is scaled against.
func buildReference(cfg *config.Config, preset calibrate.Preset) (*features.Vector, int, error) {
	if cfg.Reference.AlignmentPath == "" {
		// Stored summary statistics (blind preset only, enforced by config).
		v := features.BlindVector(cfg.Reference.AlignmentSites, cfg.Reference.Patterns, cfg.Reference.GapProportion)
		return v, cfg.Reference.AlignmentSites, nil
	}

	alignment, err := msa.ReadFastaFile(cfg.Reference.AlignmentPath)
	if err != nil {
		return nil, 0, err
	}
	return preset.Metric.Features(alignment), alignment.Length(), nil
}

func writeSummary(cfg *config.Config, presetName, runID string, seed int64, start time.Time, result *calibrate.Result) error {
	status := models.RunStatusCompleted
	switch result.Stopped {
	case "distance below threshold":
		status = models.RunStatusStopped
	case "cancelled":
		status = models.RunStatusCancelled
	}

	end := time.Now()
	summary := models.RunSummary{
		RunID:        runID,
		Status:       status,
		Preset:       presetName,
		Seed:         seed,
		StartTime:    start,
		EndTime:      end,
		Duration:     end.Sub(start),
		Rounds:       result.Rounds,
		BestDistance: result.BestDistance,
		BestMean:     result.BestMean,
		BestParameters: models.BestParameters{
			RootLength:     result.BestParams.RootLength,
			InsertionRate:  result.BestParams.InsertionRate,
			DeletionRate:   result.BestParams.DeletionRate,
			InsertionAlpha: result.BestParams.InsertionAlpha,
			DeletionAlpha:  result.BestParams.DeletionAlpha,
		},
		BestAlignmentPath: cfg.Output.BestAlignment,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.Output.BestAlignment+".summary.json", data, 0o644)
}
