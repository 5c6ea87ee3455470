package msa

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

const refFasta = `>taxon1 some description
ACGTAC
GTAC
>taxon2
ACGT--
GTAC
`

func TestReadFasta(t *testing.T) {
	a, err := ReadFasta(strings.NewReader(refFasta))
	if err != nil {
		t.Fatalf("failed to read fasta: %v", err)
	}
	if a.NumSequences() != 2 {
		t.Fatalf("expected 2 sequences, got %d", a.NumSequences())
	}
	if a.Length() != 10 {
		t.Errorf("expected length 10, got %d", a.Length())
	}
	if a.Sequence(0).ID != "taxon1" {
		t.Errorf("expected id taxon1, got %s", a.Sequence(0).ID)
	}
	if a.Sequence(1).Seq != "ACGT--GTAC" {
		t.Errorf("unexpected sequence: %s", a.Sequence(1).Seq)
	}
}

func TestReadFastaRagged(t *testing.T) {
	_, err := ReadFasta(strings.NewReader(">a\nACGT\n>b\nAC\n"))
	if err == nil {
		t.Fatal("expected error for ragged alignment")
	}
}

func TestReadFastaDataBeforeHeader(t *testing.T) {
	_, err := ReadFasta(strings.NewReader("ACGT\n>a\nACGT\n"))
	if err == nil {
		t.Fatal("expected error for data before first header")
	}
}

func TestReadFastaEmptyHeader(t *testing.T) {
	_, err := ReadFasta(strings.NewReader(">\nACGT\n"))
	if err == nil {
		t.Fatal("expected error for an empty header")
	}
}

func TestWriteFastaRoundTrip(t *testing.T) {
	a := mustAlignment(t, "ACGT-CGTAC", "TGCAA--TGC")

	var buf bytes.Buffer
	if err := WriteFasta(&buf, a); err != nil {
		t.Fatalf("failed to write fasta: %v", err)
	}

	back, err := ReadFasta(&buf)
	if err != nil {
		t.Fatalf("failed to read written fasta: %v", err)
	}
	if back.NumSequences() != a.NumSequences() {
		t.Fatalf("expected %d sequences, got %d", a.NumSequences(), back.NumSequences())
	}
	for i := 0; i < a.NumSequences(); i++ {
		if back.Sequence(i).Seq != a.Sequence(i).Seq {
			t.Errorf("sequence %d changed in round trip: %s != %s",
				i, back.Sequence(i).Seq, a.Sequence(i).Seq)
		}
	}
}

func TestReadWriteFastaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.fasta")
	a := mustAlignment(t, "ACGT", "AC-T")

	if err := WriteFastaFile(path, a); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	back, err := ReadFastaFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if back.Sequence(1).Seq != "AC-T" {
		t.Errorf("unexpected sequence: %s", back.Sequence(1).Seq)
	}
}

func TestReadFastaFileMissing(t *testing.T) {
	_, err := ReadFastaFile(filepath.Join(t.TempDir(), "missing.fasta"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
