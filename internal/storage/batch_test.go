package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/rodopios/internal/export"
	"github.com/san-kum/rodopios/internal/trace"
)

func writeKeyFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	k := sampleKey(t)
	err := export.WriteFile(path, func(w io.Writer) error { return export.WriteJSON(w, k) })
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportAll(t *testing.T) {
	src := t.TempDir()
	paths := []string{
		writeKeyFile(t, src, "a.json"),
		filepath.Join(src, "missing.json"),
		writeKeyFile(t, src, "c.json"),
		writeKeyFile(t, src, "d.json"),
	}

	st := New(filepath.Join(t.TempDir(), "runs"))
	results := st.ImportAll(context.Background(), paths, "", 3)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d out of order: %s", i, r.Path)
		}
	}
	if !trace.IsNotExist(results[1].Err) {
		t.Errorf("expected not-exist error for missing file, got %v", results[1].Err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 stored runs, got %d", len(runs))
	}
	for _, i := range []int{0, 2, 3} {
		if results[i].Err != nil || results[i].Steps != 3 {
			t.Errorf("result %d: %+v", i, results[i])
		}
		if meta, err := st.Load(results[i].RunID); err != nil || meta.AddressBase40 != "ℓℓ" {
			t.Errorf("result %d not stored: %v", i, err)
		}
	}
}

func TestImportAllCancelled(t *testing.T) {
	src := t.TempDir()
	paths := []string{writeKeyFile(t, src, "a.json"), writeKeyFile(t, src, "b.json")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := New(t.TempDir())
	for _, r := range st.ImportAll(ctx, paths, "x", 2) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", r.Path, r.Err)
		}
	}
}

func TestSaveSameInstant(t *testing.T) {
	st := New(t.TempDir())
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return fixed }

	first, err := st.Save("twin", sampleKey(t))
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save("twin", sampleKey(t))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatalf("expected distinct run ids, both %q", first)
	}
	if _, err := os.Stat(filepath.Join(st.Dir(), second, metaFile)); err != nil {
		t.Errorf("second run not written: %v", err)
	}
}

func TestRunName(t *testing.T) {
	tests := []struct {
		name, path string
		count      int
		want       string
	}{
		{"wallet", "/tmp/keys.json", 1, "wallet"},
		{"wallet", "/tmp/keys.json", 2, "wallet-keys"},
		{"", "/tmp/keys.json", 1, "keys"},
	}
	for _, tt := range tests {
		if got := runName(tt.name, tt.path, tt.count); got != tt.want {
			t.Errorf("runName(%q, %q, %d) = %q, want %q", tt.name, tt.path, tt.count, got, tt.want)
		}
	}
}
