// Package features extracts fixed-schema indel signature statistics from
// multiple sequence alignments.
package features

import (
	"github.com/seqgrove/calibration-core/pkg/msa"
)

// span is a maximal contiguous gap run position, columns inclusive.
type span struct {
	start int
	end   int
}

// runInfo aggregates all indel runs sharing the exact same span.
type runInfo struct {
	length int
	count  int
}

// uniqueIndelSignature scans every sequence left to right and aggregates
// maximal gap runs by their exact (start, end) span. A run still open at
// the end of a sequence is closed there.
func uniqueIndelSignature(a *msa.Alignment) map[span]*runInfo {
	sig := make(map[span]*runInfo)
	record := func(start, end int) {
		s := span{start: start, end: end}
		if info, ok := sig[s]; ok {
			info.count++
		} else {
			sig[s] = &runInfo{length: end - start + 1, count: 1}
		}
	}

	for i := 0; i < a.NumSequences(); i++ {
		seq := a.Sequence(i).Seq
		start := -1
		for j := 0; j < len(seq); j++ {
			if seq[j] == msa.Gap {
				if start == -1 {
					start = j
				}
			} else if start != -1 {
				record(start, j-1)
				start = -1
			}
		}
		if start != -1 {
			record(start, len(seq)-1)
		}
	}
	return sig
}

// Compute derives the base feature schema from the alignment. The caller
// guarantees a rectangular alignment; the input is never mutated.
func Compute(a *msa.Alignment) *Vector {
	vals := baseFeatures(a)
	return &Vector{
		Schema:  SchemaBase,
		Values:  orderValues(vals, BaseKeys),
		NumTaxa: a.NumSequences(),
	}
}

// ComputeExtended derives the extended schema: the base features plus
// column pattern statistics. Patterns are counted on the alignment as
// given, before any fully-gapped column removal.
func ComputeExtended(a *msa.Alignment) *Vector {
	vals := baseFeatures(a)

	weights := patternWeights(a)
	maxW, sumW := 0, 0
	for _, w := range weights {
		if w > maxW {
			maxW = w
		}
		sumW += w
	}
	vals[KeyNumPatterns] = float64(len(weights))
	vals[KeyMaxPatternWeight] = float64(maxW)
	if len(weights) > 0 {
		vals[KeyAvgPatternWeight] = float64(sumW) / float64(len(weights))
	}

	return &Vector{
		Schema:  SchemaExtended,
		Values:  orderValues(vals, ExtendedKeys),
		NumTaxa: a.NumSequences(),
	}
}

// baseFeatures computes the 27 base statistics as a key-to-value map.
func baseFeatures(a *msa.Alignment) map[string]float64 {
	vals := make(map[string]float64, len(BaseKeys))
	for _, k := range BaseKeys {
		vals[k] = 0
	}

	numSeqs := a.NumSequences()

	// The gap degree histogram is tallied over the original columns, so a
	// fully gapped column (degree == numSeqs) falls into no class.
	for _, c := range a.ColumnGapCounts() {
		switch {
		case c == 0:
			vals["num_of_msa_pos_with_0_gaps"]++
		case c == 1:
			vals["num_of_msa_pos_with_1_gaps"]++
		case c == 2:
			vals["num_of_msa_pos_with_2_gaps"]++
		case c == numSeqs-1:
			vals["num_of_msa_pos_with_n_minus_1_gaps"]++
		}
	}

	// All remaining statistics are computed after normalizing away fully
	// gapped columns. The caller's alignment is left untouched.
	working := a.RemoveFullyGappedColumns()
	vals[KeyAlignmentLen] = float64(working.Length())

	sig := uniqueIndelSignature(working)

	totalGapChars := 0
	totalUniqueGapChars := 0
	for _, info := range sig {
		totalGapChars += info.length * info.count
		vals[KeyTotalIndels] += float64(info.count)
		vals[KeyTotalUniqueIndels]++
		totalUniqueGapChars += info.length

		var lenClass string
		switch {
		case info.length == 1:
			lenClass = "one"
		case info.length == 2:
			lenClass = "two"
		case info.length == 3:
			lenClass = "three"
		default:
			lenClass = "at_least_four"
		}
		vals["num_of_indels_of_len_"+lenClass] += float64(info.count)

		// The multiplicity predicates are evaluated independently: for
		// small alignments (numSeqs <= 3) a span can satisfy more than
		// one of them and is counted in each matching bucket.
		if info.count == 1 {
			vals["num_of_indels_of_len_"+lenClass+"_in_one_pos"]++
		}
		if info.count == 2 {
			vals["num_of_indels_of_len_"+lenClass+"_in_two_pos"]++
		}
		if info.count == numSeqs-1 {
			vals["num_of_indels_of_len_"+lenClass+"_in_n_minus_1_pos"]++
		}
	}

	if vals[KeyTotalIndels] > 0 {
		vals[KeyAvgIndelLen] = float64(totalGapChars) / vals[KeyTotalIndels]
		vals[KeyAvgUniqueIndelLen] = float64(totalUniqueGapChars) / vals[KeyTotalUniqueIndels]
	}

	maxLen := 0
	minLen := working.Length()
	for i := 0; i < numSeqs; i++ {
		l := working.UngappedLength(i)
		if l > maxLen {
			maxLen = l
		}
		if l < minLen {
			minLen = l
		}
	}
	vals[KeyMSAMaxLen] = float64(maxLen)
	vals[KeyMSAMinLen] = float64(minLen)

	return vals
}

// ComputeBlind derives the coarse 3-statistic vector: raw column count,
// distinct pattern count and gap proportion. No fully-gapped column
// normalization is applied.
func ComputeBlind(a *msa.Alignment) *Vector {
	return &Vector{
		Schema: SchemaBlind,
		Values: []float64{
			float64(a.Length()),
			float64(len(patternWeights(a))),
			a.GapProportion(),
		},
		NumTaxa: a.NumSequences(),
	}
}

// BlindVector builds a blind-schema vector from externally stored summary
// statistics instead of an alignment.
func BlindVector(alignmentLen, numPatterns int, gapProportion float64) *Vector {
	return &Vector{
		Schema: SchemaBlind,
		Values: []float64{float64(alignmentLen), float64(numPatterns), gapProportion},
	}
}

// patternWeights groups columns by the tuple of residues across all
// sequences and returns the occurrence count per distinct pattern.
func patternWeights(a *msa.Alignment) map[string]int {
	weights := make(map[string]int)
	numSeqs := a.NumSequences()
	buf := make([]byte, numSeqs)
	for j := 0; j < a.Length(); j++ {
		for i := 0; i < numSeqs; i++ {
			buf[i] = a.Sequence(i).Seq[j]
		}
		weights[string(buf)]++
	}
	return weights
}

func orderValues(vals map[string]float64, keys []string) []float64 {
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = vals[k]
	}
	return out
}
