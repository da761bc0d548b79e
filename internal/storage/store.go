// Package storage keeps imported traces on disk, one directory per run.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/san-kum/rodopios/internal/export"
	"github.com/san-kum/rodopios/internal/trace"
)

// ErrNotFound indicates a run id with no stored run.
var ErrNotFound = errors.New("storage: run not found")

const (
	metaFile  = "metadata.json"
	stepsFile = "steps.csv"
	maxClaims = 100
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory runs are kept under.
func (s *Store) Dir() string { return s.baseDir }

// RunMetadata describes a stored run. Key fields are copied from the
// imported payload when present.
type RunMetadata struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Timestamp        time.Time `json:"timestamp"`
	Steps            int       `json:"steps"`
	LastSymbol       string    `json:"last_symbol,omitempty"`
	PrivateKeyBase40 string    `json:"private_key_base40,omitempty"`
	PublicKeyXBase40 string    `json:"public_key_x_base40,omitempty"`
	AddressBase40    string    `json:"address_base40,omitempty"`
	AddressBase58    string    `json:"address_base58check,omitempty"`
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Save writes k under a fresh run id derived from name.
func (s *Store) Save(name string, k *trace.KeyData) (string, error) {
	if k == nil {
		return "", trace.ErrEmptyInput
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	slug := unsafeChars.ReplaceAllString(name, "_")
	if slug == "" || slug == "." || slug == ".." {
		slug = "run"
	}

	ts := s.now()
	runID, runDir, err := s.claim(fmt.Sprintf("%s_%d", slug, ts.UnixNano()))
	if err != nil {
		return "", err
	}

	t := k.Trace()
	meta := RunMetadata{
		ID:               runID,
		Name:             name,
		Timestamp:        ts,
		Steps:            len(t),
		PrivateKeyBase40: k.PrivateKeyBase40,
		PublicKeyXBase40: k.PublicKeyXBase40,
		AddressBase40:    k.AddressBase40,
		AddressBase58:    k.AddressBase58Check,
	}
	if last, ok := t.Last(); ok {
		meta.LastSymbol = last.Symbol
	}

	err = export.WriteFile(filepath.Join(runDir, metaFile), func(w io.Writer) error {
		return export.WriteJSON(w, meta)
	})
	if err != nil {
		return "", err
	}

	err = export.WriteFile(filepath.Join(runDir, stepsFile), func(w io.Writer) error {
		return export.WriteCSV(w, t)
	})
	if err != nil {
		return "", err
	}

	return runID, nil
}

// claim creates a directory for base, adding a numeric suffix while the
// name is taken.
func (s *Store) claim(base string) (string, string, error) {
	runID := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return runID, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) || n > maxClaims {
			return "", "", fmt.Errorf("create run %s: %w", runID, err)
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}
}

// List returns every readable run, newest first. A missing base directory
// is an empty store.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.readMeta(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, notFound(runID, err)
	}
	return s.readMeta(runID)
}

// LoadTrace reads the steps table of a run.
func (s *Store) LoadTrace(runID string) (trace.Trace, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, stepsFile))
	if err != nil {
		return nil, notFound(runID, err)
	}
	defer f.Close()

	t, err := trace.DecodeCSV(f)
	if errors.Is(err, trace.ErrEmptyInput) {
		return trace.Trace{}, nil
	}
	return t, err
}

// LoadKeyData rebuilds the payload of a run from its metadata and steps.
func (s *Store) LoadKeyData(runID string) (*trace.KeyData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	t, err := s.LoadTrace(runID)
	if err != nil {
		return nil, err
	}
	k := trace.NewKeyData(t)
	k.PrivateKeyBase40 = meta.PrivateKeyBase40
	k.PublicKeyXBase40 = meta.PublicKeyXBase40
	k.AddressBase40 = meta.AddressBase40
	k.AddressBase58Check = meta.AddressBase58
	return k, nil
}

func (s *Store) Delete(runID string) error {
	dir, err := s.runDir(runID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(dir, metaFile)); err != nil {
		return notFound(runID, err)
	}
	return os.RemoveAll(dir)
}

func (s *Store) readMeta(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		return nil, notFound(runID, err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// runDir rejects ids that would escape the base directory.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID {
		return "", fmt.Errorf("%q: %w", runID, ErrNotFound)
	}
	return filepath.Join(s.baseDir, runID), nil
}

func notFound(runID string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", runID, ErrNotFound)
	}
	return err
}
