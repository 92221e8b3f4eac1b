package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFillsDefaults(t *testing.T) {
	cfg := New()
	if cfg.Logger == nil {
		t.Fatalf("expected a default logger")
	}
	if cfg.EqsThreshold == 0 || cfg.MaxSteps == 0 {
		t.Fatalf("expected nonzero default bounds")
	}
}

func TestLoadOverlaysYAMLFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	contents := "eqs_threshold: 42\nmax_steps: 7\ncomplexity_max_size: 5\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EqsThreshold != 42 {
		t.Fatalf("EqsThreshold = %d, want 42", cfg.EqsThreshold)
	}
	if cfg.MaxSteps != 7 {
		t.Fatalf("MaxSteps = %d, want 7", cfg.MaxSteps)
	}
	if cfg.ComplexityMaxSize != 5 {
		t.Fatalf("ComplexityMaxSize = %d, want 5", cfg.ComplexityMaxSize)
	}
	if cfg.Logger == nil {
		t.Fatalf("expected Load to keep the default logger")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
