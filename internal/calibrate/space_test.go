package calibrate

import (
	"testing"

	"github.com/seqgrove/calibration-core/internal/simulator"
)

func TestSearchSpaceValidate(t *testing.T) {
	valid := DefaultSearchSpace(100, 0.5)
	if err := valid.Validate(); err != nil {
		t.Fatalf("default space must validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*SearchSpace)
	}{
		{"zero root length min", func(s *SearchSpace) { s.RootLength.Min = 0 }},
		{"inverted root length", func(s *SearchSpace) { s.RootLength = IntRange{Min: 50, Max: 10} }},
		{"negative rate min", func(s *SearchSpace) { s.InsertionRate.Min = -0.1 }},
		{"inverted alpha range", func(s *SearchSpace) { s.DeletionAlpha = Range{Min: 2, Max: 1} }},
	}
	for _, tt := range tests {
		s := DefaultSearchSpace(100, 0.5)
		tt.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}
}

func TestSearchSpaceClamp(t *testing.T) {
	s := DefaultSearchSpace(100, 0.5)
	p := s.Clamp(simulator.Parameters{
		RootLength:     500,
		InsertionRate:  -1,
		DeletionRate:   0.9,
		InsertionAlpha: 0.5,
		DeletionAlpha:  1.5,
	})

	want := simulator.Parameters{
		RootLength:     100,
		InsertionRate:  0,
		DeletionRate:   0.05,
		InsertionAlpha: 1.001,
		DeletionAlpha:  1.5,
	}
	if p != want {
		t.Errorf("Clamp = %+v, want %+v", p, want)
	}
}

func TestDefaultSearchSpace(t *testing.T) {
	s := DefaultSearchSpace(100, 0.5)
	if s.RootLength.Min != 50 || s.RootLength.Max != 100 {
		t.Errorf("unexpected root length bounds %+v", s.RootLength)
	}

	// A wide span never drops the lower bound below 1.
	s = DefaultSearchSpace(1, 0.7)
	if s.RootLength.Min != 1 {
		t.Errorf("expected lower bound 1, got %d", s.RootLength.Min)
	}
}
