package distance

import (
	"math"

	"github.com/seqgrove/calibration-core/internal/features"
	"github.com/seqgrove/calibration-core/pkg/msa"
)

// RawSparta is the weighted Euclidean distance over the base feature
// schema. The weighted form squares the weight and the difference
// independently: sqrt(Σ w_i² · Δ_i²).
type RawSparta struct{}

func (m *RawSparta) Name() string {
	return string(MetricRawSparta)
}

func (m *RawSparta) Schema() features.Schema {
	return features.SchemaBase
}

func (m *RawSparta) Features(a *msa.Alignment) *features.Vector {
	return features.Compute(a)
}

func (m *RawSparta) Distance(reference, candidate *features.Vector, weights []float64) float64 {
	sum := 0.0
	for i := range reference.Values {
		d := reference.Values[i] - candidate.Values[i]
		if len(weights) > 0 {
			sum += weights[i] * weights[i] * d * d
		} else {
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// normGroup assigns each extended-schema key its normalization denominator.
type normGroup int

const (
	normBySites normGroup = iota
	normByPatterns
	normBySitesTimesTaxa
	normAlready
)

var extendedNormGroups = buildNormGroups()

func buildNormGroups() map[string]normGroup {
	groups := make(map[string]normGroup, len(features.ExtendedKeys))
	// Most keys scale with the number of sites; list the exceptions.
	for _, k := range features.ExtendedKeys {
		groups[k] = normBySites
	}
	groups[features.KeyNumPatterns] = normByPatterns
	groups[features.KeyAvgPatternWeight] = normByPatterns
	groups[features.KeyTotalIndels] = normBySitesTimesTaxa
	groups[features.KeyTotalUniqueIndels] = normBySitesTimesTaxa
	groups[features.KeyAvgIndelLen] = normAlready
	groups[features.KeyAvgUniqueIndelLen] = normAlready
	return groups
}

// ExtendedSparta normalizes every extended-schema feature before taking
// the Euclidean distance. Each vector is normalized by its own
// denominators, which keeps the metric symmetric in its arguments.
type ExtendedSparta struct{}

func (m *ExtendedSparta) Name() string {
	return string(MetricExtendedSparta)
}

func (m *ExtendedSparta) Schema() features.Schema {
	return features.SchemaExtended
}

func (m *ExtendedSparta) Features(a *msa.Alignment) *features.Vector {
	return features.ComputeExtended(a)
}

// gapStatCount is the number of unscaled gap shape statistics in the
// extended schema. In the unweighted case the normalized site and pattern
// count dimensions are scaled by this factor so that they carry the same
// total weight as the gap statistics.
const gapStatCount = 24

func (m *ExtendedSparta) Distance(reference, candidate *features.Vector, weights []float64) float64 {
	ref := normalizeExtended(reference)
	cand := normalizeExtended(candidate)

	if len(weights) == 0 {
		siteDim := 1                  // alignment_len
		patternDim := len(ref) - 3    // num_patterns
		ref[siteDim] *= gapStatCount
		cand[siteDim] *= gapStatCount
		ref[patternDim] *= gapStatCount
		cand[patternDim] *= gapStatCount
	}

	sum := 0.0
	for i := range ref {
		d := ref[i] - cand[i]
		if len(weights) > 0 {
			sum += weights[i] * weights[i] * d * d
		} else {
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// normalizeExtended divides each feature by its group denominator taken
// from the vector itself. Zero denominators yield 0 instead of Inf/NaN.
func normalizeExtended(v *features.Vector) []float64 {
	numSites := v.Get(features.KeyAlignmentLen)
	numPatterns := v.Get(features.KeyNumPatterns)
	sitesTimesTaxa := numSites * float64(v.NumTaxa)

	keys := v.Schema.Keys()
	out := make([]float64, len(v.Values))
	for i, val := range v.Values {
		var denom float64
		switch extendedNormGroups[keys[i]] {
		case normBySites:
			denom = numSites
		case normByPatterns:
			denom = numPatterns
		case normBySitesTimesTaxa:
			denom = sitesTimesTaxa
		case normAlready:
			out[i] = val
			continue
		}
		if denom != 0 {
			out[i] = val / denom
		}
	}
	return out
}
