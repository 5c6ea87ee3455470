package distance

import (
	"github.com/seqgrove/calibration-core/internal/features"
	"github.com/seqgrove/calibration-core/pkg/msa"
)

// BlindDist is a coarse weighted L1 distance over alignment length,
// pattern count and gap proportion. The length and pattern dimensions of
// both vectors are divided by the reference's alignment length, which
// makes the metric asymmetric in its two arguments.
type BlindDist struct{}

func (m *BlindDist) Name() string {
	return string(MetricBlindDist)
}

func (m *BlindDist) Schema() features.Schema {
	return features.SchemaBlind
}

func (m *BlindDist) Features(a *msa.Alignment) *features.Vector {
	return features.ComputeBlind(a)
}

func (m *BlindDist) Distance(reference, candidate *features.Vector, weights []float64) float64 {
	refLen := reference.Values[0]

	norm := func(v *features.Vector) [3]float64 {
		out := [3]float64{0, 0, v.Values[2]}
		if refLen != 0 {
			out[0] = v.Values[0] / refLen
			out[1] = v.Values[1] / refLen
		}
		return out
	}
	ref := norm(reference)
	cand := norm(candidate)

	sum := 0.0
	for i := 0; i < 3; i++ {
		d := ref[i] - cand[i]
		if d < 0 {
			d = -d
		}
		if len(weights) > 0 {
			sum += weights[i] * d
		} else {
			sum += d
		}
	}
	return sum
}
