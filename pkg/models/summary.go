// Package models holds the serializable result types written at the end
// of a calibration run.
package models

import "time"

// RunStatus represents the terminal status of a calibration run
type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusStopped   RunStatus = "stopped_early"
	RunStatusCancelled RunStatus = "cancelled"
)

// RunSummary is the JSON report written next to the best alignment.
type RunSummary struct {
	RunID     string        `json:"run_id"`
	Status    RunStatus     `json:"status"`
	Preset    string        `json:"preset"`
	Seed      int64         `json:"seed,omitempty"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration_ns"`

	// Rounds actually executed against the round budget.
	Rounds int `json:"rounds"`
	// BestDistance is the lowest single-repeat distance observed.
	BestDistance float64 `json:"best_distance"`
	// BestMean is the lowest per-round mean distance.
	BestMean float64 `json:"best_mean"`
	// BestParameters is the candidate point with the lowest round mean.
	BestParameters BestParameters `json:"best_parameters"`
	// BestAlignmentPath is where the best-found alignment was written.
	BestAlignmentPath string `json:"best_alignment_path"`
}

// BestParameters mirrors the simulator parameter point for reporting.
type BestParameters struct {
	RootLength     int     `json:"root_length"`
	InsertionRate  float64 `json:"insertion_rate"`
	DeletionRate   float64 `json:"deletion_rate"`
	InsertionAlpha float64 `json:"insertion_alpha"`
	DeletionAlpha  float64 `json:"deletion_alpha"`
}
