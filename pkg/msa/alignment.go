package msa

import "fmt"

// Gap is the alignment gap symbol.
const Gap = '-'

// Sequence is one aligned sequence with its identifier.
type Sequence struct {
	ID  string
	Seq string
}

// Alignment is an ordered set of equal-length aligned sequences.
// It is immutable once constructed; all mutating helpers return copies.
type Alignment struct {
	seqs []Sequence
}

// MalformedError indicates that a sequence set does not form a
// rectangular alignment.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return "malformed alignment: " + e.Reason
}

// New builds an Alignment from the given sequences and verifies that it
// is rectangular and non-empty.
func New(seqs []Sequence) (*Alignment, error) {
	if len(seqs) == 0 {
		return nil, &MalformedError{Reason: "no sequences"}
	}
	width := len(seqs[0].Seq)
	if width == 0 {
		return nil, &MalformedError{Reason: "empty sequences"}
	}
	for _, s := range seqs {
		if len(s.Seq) != width {
			return nil, &MalformedError{
				Reason: fmt.Sprintf("sequence %s has length %d, expected %d", s.ID, len(s.Seq), width),
			}
		}
	}
	copied := make([]Sequence, len(seqs))
	copy(copied, seqs)
	return &Alignment{seqs: copied}, nil
}

// NumSequences returns the number of sequences (taxa) in the alignment.
func (a *Alignment) NumSequences() int {
	return len(a.seqs)
}

// Length returns the number of alignment columns.
func (a *Alignment) Length() int {
	if len(a.seqs) == 0 {
		return 0
	}
	return len(a.seqs[0].Seq)
}

// Sequences returns a copy of the underlying sequence slice.
func (a *Alignment) Sequences() []Sequence {
	out := make([]Sequence, len(a.seqs))
	copy(out, a.seqs)
	return out
}

// Sequence returns the i-th sequence.
func (a *Alignment) Sequence(i int) Sequence {
	return a.seqs[i]
}

// UngappedLength returns the number of non-gap characters in sequence i.
func (a *Alignment) UngappedLength(i int) int {
	n := 0
	for _, c := range []byte(a.seqs[i].Seq) {
		if c != Gap {
			n++
		}
	}
	return n
}

// GapProportion returns the fraction of gap characters over all cells.
func (a *Alignment) GapProportion() float64 {
	rows := a.NumSequences()
	cols := a.Length()
	if rows == 0 || cols == 0 {
		return 0
	}
	gaps := 0
	for _, s := range a.seqs {
		for i := 0; i < len(s.Seq); i++ {
			if s.Seq[i] == Gap {
				gaps++
			}
		}
	}
	return float64(gaps) / float64(rows*cols)
}

// ColumnGapCounts returns, per column, the number of sequences with a gap
// in that column.
func (a *Alignment) ColumnGapCounts() []int {
	counts := make([]int, a.Length())
	for _, s := range a.seqs {
		for i := 0; i < len(s.Seq); i++ {
			if s.Seq[i] == Gap {
				counts[i]++
			}
		}
	}
	return counts
}

// RemoveFullyGappedColumns returns a copy of the alignment with every
// column removed in which all sequences carry a gap. The receiver is left
// untouched.
func (a *Alignment) RemoveFullyGappedColumns() *Alignment {
	counts := a.ColumnGapCounts()
	n := a.NumSequences()

	keep := make([]int, 0, a.Length())
	for i, c := range counts {
		if c != n {
			keep = append(keep, i)
		}
	}
	if len(keep) == a.Length() {
		return a
	}

	seqs := make([]Sequence, n)
	for i, s := range a.seqs {
		buf := make([]byte, len(keep))
		for j, col := range keep {
			buf[j] = s.Seq[col]
		}
		seqs[i] = Sequence{ID: s.ID, Seq: string(buf)}
	}
	return &Alignment{seqs: seqs}
}

// MaskSequences returns a copy in which every sequence whose ID maps to
// false in present is replaced by an all-gap sequence. IDs missing from
// the map are kept as-is.
func (a *Alignment) MaskSequences(present map[string]bool) *Alignment {
	if len(present) == 0 {
		return a
	}
	blank := ""
	seqs := make([]Sequence, len(a.seqs))
	for i, s := range a.seqs {
		if p, ok := present[s.ID]; ok && !p {
			if blank == "" {
				buf := make([]byte, len(s.Seq))
				for j := range buf {
					buf[j] = Gap
				}
				blank = string(buf)
			}
			seqs[i] = Sequence{ID: s.ID, Seq: blank}
		} else {
			seqs[i] = s
		}
	}
	return &Alignment{seqs: seqs}
}
