package storage

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/rodopios/internal/trace"
)

// Imported is the outcome of importing one file.
type Imported struct {
	Path  string
	RunID string
	Steps int
	Err   error
}

// ImportAll loads and saves every path using up to workers goroutines.
// Results keep the order of paths; a failure on one file does not stop
// the others. Paths not yet started when ctx is done report ctx.Err().
func (s *Store) ImportAll(ctx context.Context, paths []string, name string, workers int) []Imported {
	results := make([]Imported, len(paths))
	if len(paths) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if err := s.Init(); err != nil {
		for i, p := range paths {
			results[i] = Imported{Path: p, Err: err}
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = s.importFile(ctx, path, runName(name, path, len(paths)))
			return nil
		})
	}
	g.Wait()

	return results
}

func (s *Store) importFile(ctx context.Context, path, name string) Imported {
	res := Imported{Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	k, err := trace.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Steps = len(k.ScalarMultiplication)
	res.RunID, res.Err = s.Save(name, k)
	return res
}

// runName uses name for a single import and the file stem otherwise.
func runName(name, path string, count int) string {
	if name != "" && count == 1 {
		return name
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name != "" {
		return name + "-" + stem
	}
	return stem
}
