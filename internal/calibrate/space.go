package calibrate

import (
	"fmt"

	"github.com/seqgrove/calibration-core/internal/simulator"
)

// Range is a closed interval of reals.
type Range struct {
	Min float64
	Max float64
}

// IntRange is a closed interval of integers.
type IntRange struct {
	Min int
	Max int
}

// SearchSpace declares the bounded dimensions the optimizer may explore:
// one integer root length and four bounded reals.
type SearchSpace struct {
	RootLength     IntRange
	InsertionRate  Range
	DeletionRate   Range
	InsertionAlpha Range
	DeletionAlpha  Range
}

// Validate reports the first malformed bound. A malformed space is a
// configuration error and must fail before any simulation starts.
func (s SearchSpace) Validate() error {
	if s.RootLength.Min <= 0 || s.RootLength.Max < s.RootLength.Min {
		return fmt.Errorf("invalid root length bounds [%d, %d]", s.RootLength.Min, s.RootLength.Max)
	}
	for _, b := range []struct {
		name string
		r    Range
	}{
		{"insertion rate", s.InsertionRate},
		{"deletion rate", s.DeletionRate},
		{"insertion alpha", s.InsertionAlpha},
		{"deletion alpha", s.DeletionAlpha},
	} {
		if b.r.Min < 0 || b.r.Max < b.r.Min {
			return fmt.Errorf("invalid %s bounds [%g, %g]", b.name, b.r.Min, b.r.Max)
		}
	}
	return nil
}

// Clamp projects a parameter point onto the space.
func (s SearchSpace) Clamp(p simulator.Parameters) simulator.Parameters {
	clampInt := func(v int, r IntRange) int {
		if v < r.Min {
			return r.Min
		}
		if v > r.Max {
			return r.Max
		}
		return v
	}
	clamp := func(v float64, r Range) float64 {
		if v < r.Min {
			return r.Min
		}
		if v > r.Max {
			return r.Max
		}
		return v
	}
	return simulator.Parameters{
		RootLength:     clampInt(p.RootLength, s.RootLength),
		InsertionRate:  clamp(p.InsertionRate, s.InsertionRate),
		DeletionRate:   clamp(p.DeletionRate, s.DeletionRate),
		InsertionAlpha: clamp(p.InsertionAlpha, s.InsertionAlpha),
		DeletionAlpha:  clamp(p.DeletionAlpha, s.DeletionAlpha),
	}
}

// DefaultSearchSpace builds the standard space around a reference
// alignment length: root length in [len*(1-span), len], indel rates up to
// 0.05 and power-law shapes in (1, 2].
func DefaultSearchSpace(referenceLength int, rootLengthSpan float64) SearchSpace {
	min := int(float64(referenceLength) * (1 - rootLengthSpan))
	if min < 1 {
		min = 1
	}
	return SearchSpace{
		RootLength:     IntRange{Min: min, Max: referenceLength},
		InsertionRate:  Range{Min: 0, Max: 0.05},
		DeletionRate:   Range{Min: 0, Max: 0.05},
		InsertionAlpha: Range{Min: 1.001, Max: 2},
		DeletionAlpha:  Range{Min: 1.001, Max: 2},
	}
}
