package msa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFasta parses a FASTA-formatted alignment from r. Sequence data may
// span multiple lines; blank lines are skipped.
func ReadFasta(r io.Reader) (*Alignment, error) {
	var (
		seqs []Sequence
		id   string
		buf  strings.Builder
	)

	flush := func() {
		if id != "" || buf.Len() > 0 {
			seqs = append(seqs, Sequence{ID: id, Seq: buf.String()})
			buf.Reset()
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			// Only the first whitespace-delimited token names the record.
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, &MalformedError{Reason: "empty sequence header"}
			}
			id = fields[0]
			continue
		}
		if id == "" {
			return nil, &MalformedError{Reason: "sequence data before first header"}
		}
		buf.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fasta: %w", err)
	}
	flush()

	return New(seqs)
}

// ReadFastaFile reads a FASTA alignment from the file at path.
func ReadFastaFile(path string) (*Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open alignment file %s: %w", path, err)
	}
	defer f.Close()

	a, err := ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alignment file %s: %w", path, err)
	}
	return a, nil
}

// WriteFasta writes the alignment to w in FASTA format, wrapping sequence
// lines at 80 characters.
func WriteFasta(w io.Writer, a *Alignment) error {
	bw := bufio.NewWriter(w)
	for _, s := range a.Sequences() {
		if _, err := fmt.Fprintf(bw, ">%s\n", s.ID); err != nil {
			return err
		}
		for start := 0; start < len(s.Seq); start += 80 {
			end := start + 80
			if end > len(s.Seq) {
				end = len(s.Seq)
			}
			if _, err := fmt.Fprintln(bw, s.Seq[start:end]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFastaFile writes the alignment to the file at path, replacing any
// existing content.
func WriteFastaFile(path string, a *Alignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create alignment file %s: %w", path, err)
	}
	if err := WriteFasta(f, a); err != nil {
		f.Close()
		return fmt.Errorf("failed to write alignment file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close alignment file %s: %w", path, err)
	}
	return nil
}
