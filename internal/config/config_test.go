package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/rodopios/internal/alphabet"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval() != 75*time.Millisecond {
		t.Errorf("expected 75ms, got %v", cfg.Interval())
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	a, err := cfg.AlphabetOrDefault()
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != alphabet.DefaultSize {
		t.Errorf("expected default alphabet, got %d symbols", a.Len())
	}
}

func TestIntervalFallback(t *testing.T) {
	cfg := &Config{IntervalMs: -5}
	if cfg.Interval() != DefaultIntervalMs*time.Millisecond {
		t.Errorf("expected fallback interval, got %v", cfg.Interval())
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodopios.yaml")
	want := DefaultConfig()
	want.IntervalMs = 20
	want.Alphabet = []string{"a", "b", "c"}
	want.Theme = "amber"

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := Save(path, &Config{Theme: "mono"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("expected theme mono, got %s", cfg.Theme)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RODOPIOS_INTERVAL_MS", "40")
	t.Setenv("RODOPIOS_ALPHABET", "x,y,z")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.IntervalMs != 40 {
		t.Errorf("expected 40, got %d", cfg.IntervalMs)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, cfg.Alphabet); diff != "" {
		t.Errorf("alphabet mismatch:\n%s", diff)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("unset variables should keep defaults, got theme %s", cfg.Theme)
	}
}

func TestApplyEnvError(t *testing.T) {
	t.Setenv("RODOPIOS_INTERVAL_MS", "soon")

	err := DefaultConfig().ApplyEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestAlphabetOrDefaultInvalid(t *testing.T) {
	cfg := &Config{Alphabet: []string{"a", "a"}}
	if _, err := cfg.AlphabetOrDefault(); !errors.Is(err, alphabet.ErrDuplicateSymbol) {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fast")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.IntervalMs != 30 {
		t.Errorf("expected 30ms, got %d", cfg.IntervalMs)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("ludicrous") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	cfg := DefaultConfig()
	if cfg.ApplyPreset("ludicrous") {
		t.Error("unknown preset should not apply")
	}
	if cfg.IntervalMs != DefaultIntervalMs {
		t.Error("interval changed by unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"slow", "default", "fast", "instant"}
	if diff := cmp.Diff(want, ListPresets()); diff != "" {
		t.Errorf("preset order (-want +got):\n%s", diff)
	}
}
