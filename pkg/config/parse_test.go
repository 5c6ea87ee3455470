package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
log_level: info
reference:
  alignment: testdata/ref.fasta
  tree: testdata/tree.newick
  model: "GTR{1.0/2.0/1.0/1.0/2.0}+G{0.5}"
simulator:
  binary: /opt/iqtree2/bin/iqtree2
  timeout: 20s
calibration:
  preset: extended
  rounds: 100
  repeats: 5
  stop_threshold: 0.01
output:
  best_alignment: out/best.fasta
`

func TestParseYAMLValid(t *testing.T) {
	cfg, err := ParseYAMLString(validYAML)
	if err != nil {
		t.Fatalf("expected valid config, got error: %v", err)
	}
	if cfg.Calibration.Preset != "extended" {
		t.Errorf("expected preset extended, got %s", cfg.Calibration.Preset)
	}
	if cfg.Calibration.Rounds != 100 {
		t.Errorf("expected 100 rounds, got %d", cfg.Calibration.Rounds)
	}
	timeout, err := cfg.Simulator.GetTimeout()
	if err != nil {
		t.Fatalf("unexpected timeout error: %v", err)
	}
	if timeout.Seconds() != 20 {
		t.Errorf("expected 20s timeout, got %v", timeout)
	}
}

func TestParseYAMLBlindSummary(t *testing.T) {
	yamlText := `
reference:
  tree: tree.newick
  model: HKY
  alignment_sites: 1200
  patterns: 340
  gap_proportion: 0.12
simulator:
  binary: iqtree2
calibration:
  preset: blind
output:
  best_alignment: best.fasta
`
	cfg, err := ParseYAMLString(yamlText)
	if err != nil {
		t.Fatalf("expected valid config, got error: %v", err)
	}
	if cfg.Reference.AlignmentSites != 1200 {
		t.Errorf("expected 1200 alignment sites, got %d", cfg.Reference.AlignmentSites)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		errPart string
	}{
		{
			"unknown preset",
			func(s string) string { return strings.Replace(s, "preset: extended", "preset: fancy", 1) },
			"invalid preset",
		},
		{
			"missing tree",
			func(s string) string { return strings.Replace(s, "tree: testdata/tree.newick", "tree: \"\"", 1) },
			"tree path",
		},
		{
			"missing simulator binary",
			func(s string) string { return strings.Replace(s, "binary: /opt/iqtree2/bin/iqtree2", "binary: \"\"", 1) },
			"binary path",
		},
		{
			"bad timeout",
			func(s string) string { return strings.Replace(s, "timeout: 20s", "timeout: soon", 1) },
			"invalid timeout",
		},
		{
			"missing output path",
			func(s string) string { return strings.Replace(s, "best_alignment: out/best.fasta", "best_alignment: \"\"", 1) },
			"best_alignment",
		},
		{
			"negative rounds",
			func(s string) string { return strings.Replace(s, "rounds: 100", "rounds: -1", 1) },
			"rounds",
		},
		{
			"summary stats with extended preset",
			func(s string) string {
				return strings.Replace(s, "alignment: testdata/ref.fasta", "alignment_sites: 100\n  patterns: 10", 1)
			},
			"blind preset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAMLString(tt.mutate(validYAML))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error mentioning %q, got: %v", tt.errPart, err)
			}
		})
	}
}

func TestParseYAMLMutuallyExclusiveReference(t *testing.T) {
	yamlText := strings.Replace(validYAML, "preset: extended", "preset: blind", 1)
	yamlText = strings.Replace(yamlText, "model: \"GTR{1.0/2.0/1.0/1.0/2.0}+G{0.5}\"",
		"model: HKY\n  alignment_sites: 100\n  patterns: 10", 1)

	_, err := ParseYAMLString(yamlText)
	if err == nil {
		t.Fatal("expected mutually exclusive reference error, got nil")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("expected mutually exclusive error, got: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Output.BestAlignment != "out/best.fasta" {
		t.Errorf("unexpected output path: %s", cfg.Output.BestAlignment)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
