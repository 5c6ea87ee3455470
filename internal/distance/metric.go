// Package distance provides the alignment distance metrics used to score
// simulated alignments against a reference signature.
package distance

import (
	"fmt"

	"github.com/seqgrove/calibration-core/internal/features"
	"github.com/seqgrove/calibration-core/pkg/msa"
)

// Metric computes feature vectors and scalar distances between them.
// Lower distances mean closer indel signatures.
type Metric interface {
	// Features extracts the metric's feature schema from an alignment.
	Features(a *msa.Alignment) *features.Vector

	// Distance computes the distance between a reference and a candidate
	// vector. weights may be nil; when given, it must have one entry per
	// schema dimension (enforced by CheckWeights, not here).
	Distance(reference, candidate *features.Vector, weights []float64) float64

	// Schema returns the feature schema the metric compares.
	Schema() features.Schema

	// Name returns the configuration name of the metric.
	Name() string
}

// MetricType names the available metrics in configuration files.
type MetricType string

const (
	// MetricRawSparta is the weighted Euclidean distance over the base schema.
	MetricRawSparta MetricType = "raw_sparta"
	// MetricExtendedSparta normalizes the extended schema before the distance.
	MetricExtendedSparta MetricType = "extended_sparta"
	// MetricBlindDist is the coarse L1 distance over the 3-statistic schema.
	MetricBlindDist MetricType = "blind"
)

// UnknownMetricError indicates an unrecognized metric name.
type UnknownMetricError struct {
	MetricType string
}

func (e *UnknownMetricError) Error() string {
	return "unknown distance metric: " + e.MetricType
}

// New creates a metric from its configuration name.
func New(metricType string) (Metric, error) {
	switch MetricType(metricType) {
	case MetricRawSparta:
		return &RawSparta{}, nil
	case MetricExtendedSparta:
		return &ExtendedSparta{}, nil
	case MetricBlindDist:
		return &BlindDist{}, nil
	default:
		return nil, &UnknownMetricError{MetricType: metricType}
	}
}

// CheckWeights validates an optional weight vector against the metric's
// schema. A nil or empty slice means unweighted and is always valid.
func CheckWeights(m Metric, weights []float64) error {
	if len(weights) == 0 {
		return nil
	}
	want := len(m.Schema().Keys())
	if len(weights) != want {
		return fmt.Errorf("metric %s expects %d weights, got %d", m.Name(), want, len(weights))
	}
	return nil
}
