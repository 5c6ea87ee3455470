package calibrate

import (
	"fmt"

	"github.com/seqgrove/calibration-core/internal/distance"
)

// Preset is one named operating configuration of the calibration loop.
// Both presets run the same algorithm and differ only in metric, weights
// and search-space width.
type Preset struct {
	Name    string
	Metric  distance.Metric
	Weights []float64
	// RootLengthSpan is the fraction below the reference length the root
	// length dimension may explore.
	RootLengthSpan float64
	Rounds         int
	Repeats        int
}

// BlindPreset is the cheap 3-statistic calibration: BlindDist with fixed
// weights, usable without a reference alignment.
func BlindPreset() Preset {
	return Preset{
		Name:           "blind",
		Metric:         &distance.BlindDist{},
		Weights:        []float64{9, 10, 1},
		RootLengthSpan: 0.7,
		Rounds:         DefaultRounds,
		Repeats:        DefaultRepeats,
	}
}

// ExtendedPreset is the fuller multi-statistic calibration over the
// normalized extended schema, unweighted.
func ExtendedPreset() Preset {
	return Preset{
		Name:           "extended",
		Metric:         &distance.ExtendedSparta{},
		RootLengthSpan: 0.5,
		Rounds:         DefaultRounds,
		Repeats:        DefaultRepeats,
	}
}

// PresetByName resolves a configured preset name.
func PresetByName(name string) (Preset, error) {
	switch name {
	case "blind":
		return BlindPreset(), nil
	case "extended":
		return ExtendedPreset(), nil
	default:
		return Preset{}, fmt.Errorf("unknown preset: %s", name)
	}
}

// Validate checks the preset's weight configuration against its metric.
// Invalid presets must be rejected before any simulation starts.
func (p Preset) Validate() error {
	if p.Metric == nil {
		return fmt.Errorf("preset %s: metric is required", p.Name)
	}
	if err := distance.CheckWeights(p.Metric, p.Weights); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return nil
}
